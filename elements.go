// Package planetpos computes approximate heliocentric positions of the major
// planets from JPL's low-precision Keplerian elements and their secular
// rates. The model is valid for a few centuries around J2000.
package planetpos

import "strings"

// planetElements holds the JPL low-precision Keplerian elements, one row per
// planet in table order. Columns 0-5 are the values at J2000: semi-major
// axis a [AU], eccentricity e, inclination i [deg], mean longitude L [deg],
// longitude of perihelion ϖ [deg], longitude of the ascending node Ω [deg].
// Columns 6-11 are their rates per Julian century in the same order.
var planetElements = [8][12]float64{
	{0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
	{0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
	{1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0},
	{1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
	{5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
	{9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
	{19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
	{30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664},
}

// Planet ties a planet name to its row of the element table.
type Planet struct {
	Name  string
	index int
}

// The eight major planets, in table order.
var (
	Mercury = Planet{"Mercury", 0}
	Venus   = Planet{"Venus", 1}
	Earth   = Planet{"Earth", 2}
	Mars    = Planet{"Mars", 3}
	Jupiter = Planet{"Jupiter", 4}
	Saturn  = Planet{"Saturn", 5}
	Uranus  = Planet{"Uranus", 6}
	Neptune = Planet{"Neptune", 7}
)

// Planets lists the eight major planets in increasing distance from the Sun.
var Planets = [8]Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// Index returns the position of this planet in the table ordering (0 = Mercury).
func (p Planet) Index() int {
	return p.index
}

// String implements the Stringer interface.
func (p Planet) String() string {
	return p.Name
}

// elementsAt propagates the element row linearly to T Julian centuries past
// J2000 and converts the angles to radians.
func (p Planet) elementsAt(T float64) (a, e, i, L, ϖ, Ω float64) {
	row := planetElements[p.index]
	a = row[0] + T*row[6]
	e = row[1] + T*row[7]
	i = (row[2] + T*row[8]) * deg2rad
	L = (row[3] + T*row[9]) * deg2rad
	ϖ = (row[4] + T*row[10]) * deg2rad
	Ω = (row[5] + T*row[11]) * deg2rad
	return
}

// PlanetRef identifies a planet either by table index or by name.
// Construct one with ByIndex or ByName.
type PlanetRef struct {
	index  int
	name   string
	byName bool
}

// ByIndex references a planet by its 0-indexed table position.
func ByIndex(i int) PlanetRef {
	return PlanetRef{index: i}
}

// ByName references a planet by name. Matching is case-insensitive but
// otherwise exact.
func ByName(name string) PlanetRef {
	return PlanetRef{name: name, byName: true}
}

// Resolve maps this reference to its planet, or an InvalidPlanetError if the
// index is out of range or the name does not match any planet.
func (r PlanetRef) Resolve() (Planet, error) {
	if r.byName {
		for _, p := range Planets {
			if strings.EqualFold(p.Name, r.name) {
				return p, nil
			}
		}
		return Planet{}, InvalidPlanetError{Index: -1, Name: r.name}
	}
	if r.index < 0 || r.index > 7 {
		return Planet{}, InvalidPlanetError{Index: r.index}
	}
	return Planets[r.index], nil
}
