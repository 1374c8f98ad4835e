package spatial

// Direction is the direction of flow along the grid.
type Direction int

// Flow directions. Forward flow enters at node 0, Backward flow at node N. A
// counter-current exchanger has one side Forward and the other Backward.
const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "Backward"
	}

	return "Forward"
}

// InletNode returns the node index where the flow enters.
func (d Direction) InletNode(g Grid) int {
	if d == Backward {
		return g.Intervals()
	}

	return 0
}

// OutletNode returns the node index where the flow leaves.
func (d Direction) OutletNode(g Grid) int {
	if d == Backward {
		return 0
	}

	return g.Intervals()
}

// Stencil evaluates finite-difference terms on a field for one flow
// direction. The inlet node takes Inlet as its missing upstream neighbor; the
// outlet node takes its own value as its missing downstream neighbor, which
// is a zero-gradient outflow condition.
type Stencil struct {
	Grid      Grid
	Direction Direction
	Inlet     float64
}

// Neighbors returns the upstream and downstream neighbor values of node n.
func (s Stencil) Neighbors(v []float64, n int) (up, down float64) {
	upIdx, downIdx := n-1, n+1
	if s.Direction == Backward {
		upIdx, downIdx = n+1, n-1
	}

	if upIdx < 0 || upIdx >= len(v) {
		up = s.Inlet
	} else {
		up = v[upIdx]
	}

	if downIdx < 0 || downIdx >= len(v) {
		down = v[n]
	} else {
		down = v[downIdx]
	}

	return up, down
}

// Convection returns the first-order upwind term (v[up] - v[n]) / dz. The
// rate of change due to flow at speed u is u times this term.
func (s Stencil) Convection(v []float64, n int) float64 {
	up, _ := s.Neighbors(v, n)

	return (up - v[n]) / s.Grid.Dz()
}

// Diffusion returns the second-order term (v[n-1] - 2 v[n] + v[n+1]) / dz².
func (s Stencil) Diffusion(v []float64, n int) float64 {
	up, down := s.Neighbors(v, n)
	dz := s.Grid.Dz()

	return (up - 2*v[n] + down) / (dz * dz)
}
