package model

import "time"

// Review is a user's rating of a stall.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	StallID   uint      `json:"stall_id" gorm:"not null;index"`
	Rating    int       `json:"rating" gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Stall *Stall `json:"-" gorm:"foreignKey:StallID;constraint:OnDelete:CASCADE"`
}

// Comment is a reply to a review.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReviewID  uint      `json:"review_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Review *Review `json:"-" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Favorite bookmarks a stall, a food item, or both for a user.
// At least one of StallID and FoodID is set.
type Favorite struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_stall;uniqueIndex:idx_favorites_user_food"`
	StallID   *uint      `json:"stall_id,omitempty" gorm:"uniqueIndex:idx_favorites_user_stall"`
	FoodID    *uint      `json:"food_id,omitempty" gorm:"uniqueIndex:idx_favorites_user_food"`
	Notes     *string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`

	// Relations
	User  *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Stall *Stall    `json:"-" gorm:"foreignKey:StallID;constraint:OnDelete:CASCADE"`
	Food  *FoodItem `json:"-" gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
}

// Recommendation is an admin tip about a stall and optionally one of its dishes.
type Recommendation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	StallID   uint      `json:"stall_id" gorm:"not null;index"`
	FoodID    *uint     `json:"food_id,omitempty" gorm:"index"`
	Tip       string    `json:"tip" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Relations
	User  *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Stall *Stall    `json:"-" gorm:"foreignKey:StallID;constraint:OnDelete:CASCADE"`
	Food  *FoodItem `json:"-" gorm:"foreignKey:FoodID;constraint:OnDelete:SET NULL"`
}

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&HawkerCenter{},
		&Stall{},
		&FoodItem{},
		&Review{},
		&Comment{},
		&Favorite{},
		&Recommendation{},
	}
}
