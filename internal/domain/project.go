package domain

import "time"

const ProjectStatusActive = "ACTIVE"

type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Status      string    `json:"status" gorm:"default:'ACTIVE';not null"`
	OwnerID     uint      `json:"ownerId" gorm:"index;not null"`
	Owner       *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
