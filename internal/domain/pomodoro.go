package domain

import "time"

type PomodoroMode string

const (
	PomodoroModeWork       PomodoroMode = "WORK"
	PomodoroModeShortBreak PomodoroMode = "SHORT_BREAK"
	PomodoroModeLongBreak  PomodoroMode = "LONG_BREAK"
)

// AllPomodoroModes contains all valid modes
var AllPomodoroModes = []PomodoroMode{
	PomodoroModeWork, PomodoroModeShortBreak, PomodoroModeLongBreak,
}

// IsValid checks if a mode is valid
func (m PomodoroMode) IsValid() bool {
	switch m {
	case PomodoroModeWork, PomodoroModeShortBreak, PomodoroModeLongBreak:
		return true
	}
	return false
}

// PomodoroSession is an append-only focus log entry. UserID is always the
// authenticated caller; sessions are never updated or deleted.
type PomodoroSession struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Duration  int          `json:"duration" gorm:"not null"`
	Mode      PomodoroMode `json:"mode" gorm:"type:varchar(16);not null"`
	UserID    uint         `json:"userId" gorm:"index;not null"`
	TaskID    *uint        `json:"taskId,omitempty" gorm:"index"`
	CreatedAt time.Time    `json:"createdAt"`
}
