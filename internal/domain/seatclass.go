package domain

type SeatClass string

const (
	SeatClassEconomy        SeatClass = "economy"
	SeatClassPremiumEconomy SeatClass = "premium-economy"
	SeatClassBusiness       SeatClass = "business"
	SeatClassFirstClass     SeatClass = "first-class"
)

var seatClassLetters = map[SeatClass]string{
	SeatClassEconomy:        "E",
	SeatClassPremiumEconomy: "P",
	SeatClassBusiness:       "B",
	SeatClassFirstClass:     "A",
}

// Share of the flight's total seats allotted to each class, in percent.
// The split sums to 100 so class allotments never oversell the aircraft.
var seatClassShares = map[SeatClass]int{
	SeatClassEconomy:        60,
	SeatClassPremiumEconomy: 20,
	SeatClassBusiness:       15,
	SeatClassFirstClass:     5,
}

func (c SeatClass) Valid() bool {
	_, ok := seatClassLetters[c]
	return ok
}

// Letter returns the seat-code prefix for the class (E, P, B or A).
func (c SeatClass) Letter() string {
	return seatClassLetters[c]
}

// Allotment returns how many of totalSeats belong to the class.
func (c SeatClass) Allotment(totalSeats int) int {
	return totalSeats * seatClassShares[c] / 100
}

func ParseSeatClass(s string) (SeatClass, error) {
	c := SeatClass(s)
	if !c.Valid() {
		return "", NewInvalidRequest("unknown seat class: " + s)
	}
	return c, nil
}
