// Package seats computes seat codes for new bookings. Allocation is a pure
// function of the seat codes already occupied on the allocation key; keeping
// it free of I/O means correctness depends entirely on the caller reading an
// up-to-date occupancy under the allocation lock.
package seats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// Allocate returns passengerCount seat codes for the given class, filling the
// lowest sequence numbers absent from occupied. Cancellations leave holes in
// the numbering; those numbers are reused before new ones are minted, and a
// code held by a confirmed booking is never issued again. Codes look like
// "E-4": the class letter, a dash, the sequence number. Codes of other
// classes in occupied are ignored.
func Allocate(occupied []string, class domain.SeatClass, passengerCount int) ([]string, error) {
	if passengerCount <= 0 {
		return nil, domain.NewInvalidRequest("a booking must have at least one passenger")
	}
	if !class.Valid() {
		return nil, domain.NewInvalidRequest("unknown seat class: " + string(class))
	}

	prefix := class.Letter() + "-"
	taken := make(map[int]bool, len(occupied))
	for _, code := range occupied {
		rest, ok := strings.CutPrefix(code, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > 0 {
			taken[n] = true
		}
	}

	codes := make([]string, 0, passengerCount)
	for n := 1; len(codes) < passengerCount; n++ {
		if taken[n] {
			continue
		}
		codes = append(codes, fmt.Sprintf("%s%d", prefix, n))
	}
	return codes, nil
}
