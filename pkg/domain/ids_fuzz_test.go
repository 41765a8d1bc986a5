package domain

import (
	"testing"
)

// FuzzParseMatchID checks that parsing never panics on arbitrary input and
// that every accepted id round-trips.
func FuzzParseMatchID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("m1718000000000")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseMatchID(input)
		if err != nil {
			return
		}
		if id.IsNil() {
			t.Fatal("accepted nil id")
		}
		roundTrip, err := ParseMatchID(id.String())
		if err != nil {
			t.Fatalf("valid id failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Fatal("round-trip changed id value")
		}
	})
}
