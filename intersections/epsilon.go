package intersections

// Epsilon is the tolerance for parallelism, degeneracy and containment
// slack in the primitive intersection tests.
const Epsilon = 1e-10

// Tolerance is a suggested value for the tol arguments of the drivers,
// for deciding that two evaluated points coincide. No function applies it
// implicitly.
const Tolerance = 1e-6
