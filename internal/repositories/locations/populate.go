package locations

import (
	"log"

	"github.com/KirkDiggler/geoquest/internal/services/encounter"
)

// Populate rolls an encounter for the location and adds the monsters to it.
// The location's own type always feeds species nullification.
func Populate(svc encounter.Service, location *Location, input encounter.GenerateInput) (int, error) {
	input.LocationTypeID = location.TypeID

	monsters, err := svc.Generate(&input)
	if err != nil {
		return 0, err
	}

	for _, m := range monsters {
		location.AddMonster(m)
	}
	log.Printf("Locations: populated %s (%s) with %d monsters at tier %s", location.ID, location.TypeID, len(monsters), input.Tier)

	return len(monsters), nil
}
