// Package render draws a TSP solution over its instance as a static PNG image.
//
// One image shows:
//   - every node of the instance as a light grey marker,
//   - the nodes visited by the solution as blue markers,
//   - the closed red path through the visited nodes, in tour order,
//   - the identifier of every visited node, in white, on its marker.
//
// Marker area follows the node cost: area (pt²) = cost / divisor, divisor 4 by
// default, which matches the scatter sizes of the course report figures.
//
// The tour is rotated to start at its smallest identifier before drawing, so
// the same cyclic tour always yields the same path point order.
//
// Every call builds its own gonum plot and canvas; nothing is kept between
// calls, so a Renderer can be reused across any number of solutions.
//
//	r := render.New(render.WithSize(8*vg.Inch, 8*vg.Inch))
//	err := r.Render(set, tour.FromString("120"), "out/Greedy_TSPA.png")
package render
