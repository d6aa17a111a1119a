package engine

func init() {
	initPositionBB()
}
