package component

import "github.com/milk9111/isometric/motion"

type Facing struct {
	Dir motion.Facing
}

var FacingComponent = NewComponent[Facing]()
