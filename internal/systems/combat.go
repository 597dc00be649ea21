package systems

import (
	"math/rand"

	"skirmish-server/internal/domain"
	"skirmish-server/pkg/logger"
	"skirmish-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AttackSpec parametrises an attack action.
type AttackSpec struct {
	Damage  int
	Range   int
	Targets []domain.ActorKind
}

// Attack picks a random eligible actor in range and proposes damaging it.
// The proposal is keyed to the target. With nobody in range the attacker stays put.
func Attack(self domain.Actor, actors []domain.Actor, rng *rand.Rand, atk AttackSpec) domain.Proposal {
	target, ok := utils.Pick(rng, ActorsInRange(actors, self, atk.Range, atk.Targets...))
	if !ok {
		return domain.Stay(self)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": self.ID,
		"target_id":   target.ID,
		"damage":      atk.Damage,
		"hp_before":   target.Life,
	}).Debug("Attack proposed.")

	return domain.Damage(self, target, atk.Damage)
}
