package plfhelper

// Level is a player rank earned by collecting points.
type Level int

type levelInfo struct {
	title  string
	points int64
}

// levels is ordered by ascending point threshold.
var levels = []levelInfo{
	{"Salatschleuderer", 0},
	{"Erbsenzähler", 300},
	{"Tomatendealer", 1000},
	{"Zwiebeltreter", 5000},
	{"Erntehelfer", 15000},
	{"Kartoffelschäler", 40000},
	{"Grünzeugvertreter", 100000},
	{"Maulwurfjäger", 200000},
	{"Kleingärtner", 350000},
	{"Blaubeerbaron", 550000},
	{"Vogelscheucher", 800000},
	{"Rosenkavalier", 1500000},
	{"Gemüseguru", 2500000},
	{"Kirschkernspucker", 4500000},
	{"Zaunkönig", 7500000},
	{"Walnusswächter", 15000000},
	{"Lilienlobbyist", 22000000},
	{"Orchideenzüchter", 30000000},
	{"Krokuspokus", 40000000},
	{"Unkrautschreck", 55000000},
	{"Gerberagerber", 70000000},
	{"Wurzelimperator", 99999999},
	{"Superimperator", 300000000},
	{"Seerosenfee", 450000000},
	{"Engelstrompeter", 600000000},
	{"Bohnenbaron", 750000000},
	{"Superzwerg", 900000000},
}

// LevelUnknown is returned for negative point totals.
const LevelUnknown Level = -1

// LevelCount is the number of levels.
func LevelCount() int {
	return len(levels)
}

// LevelForPoints returns the highest level whose threshold is at most points.
func LevelForPoints(points int64) Level {
	if points < 0 {
		return LevelUnknown
	}
	lvl := Level(0)
	for i, info := range levels {
		if info.points > points {
			break
		}
		lvl = Level(i)
	}
	return lvl
}

// Points returns the threshold needed to reach the level.
func (l Level) Points() int64 {
	if l < 0 || int(l) >= len(levels) {
		return -1
	}
	return levels[l].points
}

// Next returns the following level and false if l is the highest level.
func (l Level) Next() (Level, bool) {
	if l < 0 || int(l)+1 >= len(levels) {
		return l, false
	}
	return l + 1, true
}

// String returns the in-game title of the level.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levels) {
		return "(unknown)"
	}
	return levels[l].title
}
