package register

import (
	"fmt"
	"strings"

	"github.com/hkmshb/elco/pkg/powerline"
	"github.com/hkmshb/elco/pkg/station"
	"github.com/hkmshb/elco/pkg/voltage"
)

// Station is a power station record.
type Station struct {
	Code     string
	Name     string
	Category station.Category
	Ratio    voltage.Ratio

	// SourceFeeder is the code of the feeder supplying the station, if any.
	SourceFeeder string

	Public bool
	Notes  string

	// Line is the line number in the source file (1-based, 0 if unknown).
	Line int
}

// Subject names the record in messages.
func (s Station) Subject() string {
	return fmt.Sprintf("station %s", s.Code)
}

// PowerLine is a feeder or upriser record.
type PowerLine struct {
	Code    string
	Name    string
	Type    powerline.Type
	Voltage voltage.Level

	// SourceStation is the code of the station the line leaves from.
	SourceStation string

	Line int
}

// Subject names the record in messages.
func (p PowerLine) Subject() string {
	return fmt.Sprintf("power line %s", p.Code)
}

// Rating is a transformer rating record. Capacity is in KVA.
type Rating struct {
	Code     string
	Capacity uint32
	Ratio    voltage.Ratio
	Notes    string

	Line int
}

// Subject names the record in messages.
func (r Rating) Subject() string {
	return fmt.Sprintf("rating %s", r.Code)
}

// Transformer is an installed transformer.
type Transformer struct {
	SerialNo  string
	Station   string
	Rating    string
	Condition Condition

	Line int
}

// Subject names the record in messages.
func (t Transformer) Subject() string {
	if t.SerialNo == "" {
		return fmt.Sprintf("transformer at %s", t.Station)
	}
	return fmt.Sprintf("transformer %s", t.SerialNo)
}

// Register is a set of asset records checked together.
type Register struct {
	// Name is an optional register title.
	Name string

	Stations     []Station
	PowerLines   []PowerLine
	Ratings      []Rating
	Transformers []Transformer

	stationByCode   map[string]int
	powerLineByCode map[string]int
	ratingByCode    map[string]int
}

// New creates an empty register.
func New() *Register {
	return &Register{
		stationByCode:   make(map[string]int),
		powerLineByCode: make(map[string]int),
		ratingByCode:    make(map[string]int),
	}
}

// AddStation appends a station record. The first record wins lookups when
// codes repeat.
func (r *Register) AddStation(s Station) {
	key := normalizeCode(s.Code)
	if _, ok := r.stationByCode[key]; !ok {
		r.stationByCode[key] = len(r.Stations)
	}
	r.Stations = append(r.Stations, s)
}

// AddPowerLine appends a power line record.
func (r *Register) AddPowerLine(p PowerLine) {
	key := normalizeCode(p.Code)
	if _, ok := r.powerLineByCode[key]; !ok {
		r.powerLineByCode[key] = len(r.PowerLines)
	}
	r.PowerLines = append(r.PowerLines, p)
}

// AddRating appends a rating record. Rating codes are looked up exactly:
// their multiplier is case-sensitive.
func (r *Register) AddRating(rt Rating) {
	key := strings.TrimSpace(rt.Code)
	if _, ok := r.ratingByCode[key]; !ok {
		r.ratingByCode[key] = len(r.Ratings)
	}
	r.Ratings = append(r.Ratings, rt)
}

// AddTransformer appends a transformer record.
func (r *Register) AddTransformer(t Transformer) {
	r.Transformers = append(r.Transformers, t)
}

// Station returns the station with the given code.
func (r *Register) Station(code string) (Station, bool) {
	i, ok := r.stationByCode[normalizeCode(code)]
	if !ok {
		return Station{}, false
	}
	return r.Stations[i], true
}

// PowerLine returns the power line with the given code.
func (r *Register) PowerLine(code string) (PowerLine, bool) {
	i, ok := r.powerLineByCode[normalizeCode(code)]
	if !ok {
		return PowerLine{}, false
	}
	return r.PowerLines[i], true
}

// Rating returns the rating with the given code.
func (r *Register) Rating(code string) (Rating, bool) {
	i, ok := r.ratingByCode[strings.TrimSpace(code)]
	if !ok {
		return Rating{}, false
	}
	return r.Ratings[i], true
}

// Count returns the total number of records.
func (r *Register) Count() int {
	return len(r.Stations) + len(r.PowerLines) + len(r.Ratings) + len(r.Transformers)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
