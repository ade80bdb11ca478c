package astro

import (
	"math"
	"math/rand"
)

// CelestialSphereRadius is the distance at which backdrop stars are placed.
const CelestialSphereRadius = 450.0

// Star represents a cataloged star with position and brightness.
type Star struct {
	Name   string  // Common name (e.g., "Sirius", "Vega")
	RAdeg  float64 // Right Ascension in degrees (J2000)
	DecDeg float64 // Declination in degrees (J2000)
	Mag    float64 // Apparent visual magnitude (lower = brighter)
}

// StarCatalog holds a collection of stars for rendering.
type StarCatalog struct {
	Stars []Star
}

// DefaultStarCatalog returns the bright named stars used to anchor the backdrop.
// Coordinates are J2000 epoch.
func DefaultStarCatalog() StarCatalog {
	return StarCatalog{
		Stars: defaultStars,
	}
}

// defaultStars is ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	{"Sirius", 101.287, -16.716, -1.46},
	{"Canopus", 95.988, -52.696, -0.74},
	{"Arcturus", 213.915, 19.182, -0.05},
	{"Vega", 279.235, 38.784, 0.03},
	{"Capella", 79.172, 45.998, 0.08},
	{"Rigel", 78.634, -8.202, 0.13},
	{"Procyon", 114.826, 5.225, 0.34},
	{"Achernar", 24.429, -57.237, 0.46},
	{"Betelgeuse", 88.793, 7.407, 0.50},
	{"Hadar", 210.956, -60.373, 0.61},
	{"Altair", 297.696, 8.868, 0.76},
	{"Acrux", 186.650, -63.099, 0.76},
	{"Aldebaran", 68.980, 16.509, 0.85},
	{"Antares", 247.352, -26.432, 0.96},
	{"Spica", 201.298, -11.161, 0.97},
	{"Pollux", 116.329, 28.026, 1.14},
	{"Fomalhaut", 344.413, -29.622, 1.16},
	{"Deneb", 310.358, 45.280, 1.25},
	{"Mimosa", 191.930, -59.689, 1.25},
	{"Regulus", 152.093, 11.967, 1.35},
	{"Adhara", 104.656, -28.972, 1.50},
	{"Castor", 113.650, 31.889, 1.58},
	{"Shaula", 263.402, -37.104, 1.63},
	{"Bellatrix", 81.283, 6.350, 1.64},
	{"Elnath", 81.573, 28.608, 1.65},
	{"Alnilam", 84.053, -1.202, 1.69},
	{"Alnitak", 85.190, -1.943, 1.77},
	{"Alioth", 193.507, 55.960, 1.77},
	{"Dubhe", 165.932, 61.751, 1.79},
	{"Mirfak", 51.081, 49.861, 1.79},
	{"Wezen", 107.098, -26.393, 1.84},
	{"Alkaid", 206.885, 49.313, 1.86},
	{"Alhena", 99.428, 16.399, 1.93},
	{"Peacock", 306.412, -56.735, 1.94},
	{"Polaris", 37.954, 89.264, 2.02},
	{"Alphard", 141.897, -8.659, 2.00},
	{"Hamal", 31.793, 23.463, 2.00},
	{"Nunki", 283.816, -26.297, 2.02},
	{"Mizar", 200.981, 54.925, 2.04},
	{"Alpheratz", 2.097, 29.091, 2.06},
	{"Saiph", 86.939, -9.670, 2.09},
	{"Kochab", 222.676, 74.156, 2.08},
	{"Rasalhague", 263.734, 12.560, 2.08},
	{"Algol", 47.042, 40.957, 2.12},
	{"Denebola", 177.265, 14.572, 2.13},
	{"Alphecca", 233.672, 26.715, 2.23},
	{"Mintaka", 83.002, -0.299, 2.23},
	{"Sadr", 305.557, 40.257, 2.23},
	{"Schedar", 10.127, 56.537, 2.23},
	{"Enif", 326.046, 9.875, 2.39},
	{"Markab", 346.190, 15.205, 2.49},
	{"Albireo", 292.680, 27.960, 3.18},
}

// RADecToUnit converts J2000 RA/Dec to an equatorial unit vector.
func RADecToUnit(raDeg, decDeg float64) Vec3 {
	ra := DegToRad(raDeg)
	dec := DegToRad(decDeg)
	return Vec3{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// BackdropStar is one point of the starfield in scene coordinates.
type BackdropStar struct {
	Name       string // empty for filler stars
	Position   Vec3
	Brightness float64 // 0..1
}

// Starfield builds a backdrop of count stars on a sphere of the given radius.
// Catalog stars come first, placed at their true directions; the rest are
// scattered uniformly from a deterministic seed so a density change only adds
// or removes stars at the tail.
func Starfield(cat StarCatalog, count int, radius float64, seed int64) []BackdropStar {
	if count <= 0 {
		return nil
	}

	out := make([]BackdropStar, 0, count)
	for _, s := range cat.Stars {
		if len(out) == count {
			return out
		}
		dir := EclipticToScene(EquatorialToEcliptic(RADecToUnit(s.RAdeg, s.DecDeg)))
		out = append(out, BackdropStar{
			Name:       s.Name,
			Position:   dir.Scale(radius),
			Brightness: magnitudeToBrightness(s.Mag),
		})
	}

	rng := rand.New(rand.NewSource(seed))
	for len(out) < count {
		// Uniform on the sphere: z uniform in [-1,1], longitude uniform.
		z := 2*rng.Float64() - 1
		lon := 2 * math.Pi * rng.Float64()
		rxy := math.Sqrt(1 - z*z)
		dir := Vec3{X: rxy * math.Cos(lon), Y: z, Z: rxy * math.Sin(lon)}
		out = append(out, BackdropStar{
			Position:   dir.Scale(radius),
			Brightness: 0.2 + 0.5*rng.Float64(),
		})
	}
	return out
}

// magnitudeToBrightness maps visual magnitude onto 0..1 (mag -1.5 -> 1, mag 4 -> ~0.2).
func magnitudeToBrightness(mag float64) float64 {
	b := 1 - (mag+1.5)/7
	return math.Max(0.2, math.Min(1, b))
}
