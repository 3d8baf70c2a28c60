// Package sampling generates reproducible random point sets for feeding
// into package delaunay, mirroring the reference application's
// seed-parameterised RNG: the same seed and count always produce the
// same points, so a triangulation run can be reproduced exactly from its
// logged seed.
package sampling
