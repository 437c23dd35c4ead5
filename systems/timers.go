package systems

import (
	"github.com/BadMagic100/RandoMapCore/timers"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTimers pumps the scheduler that runs sprite cycling
func NewUpdateTimers(s *timers.Scheduler) ecs.System {
	return func(_ *ecs.ECS) {
		s.Update()
	}
}
