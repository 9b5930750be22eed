package model

import "time"

// Listing rows carry display columns joined from related tables.

type StallRow struct {
	Stall
	CenterName *string `json:"center_name,omitempty"`
}

type CenterRow struct {
	HawkerCenter
	StallCount int64 `json:"stall_count"`
}

type FoodItemRow struct {
	FoodItem
	StallName string `json:"stall_name"`
}

type ReviewRow struct {
	Review
	Username   string  `json:"username"`
	StallName  string  `json:"stall_name"`
	Location   string  `json:"location"`
	StallImage string  `json:"stall_image"`
	CenterName *string `json:"center_name,omitempty"`
}

type CommentRow struct {
	Comment
	Username string `json:"username"`
}

type FavoriteRow struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	Username   string     `json:"username"`
	StallID    *uint      `json:"stall_id,omitempty"`
	StallName  *string    `json:"stall_name,omitempty"`
	Location   *string    `json:"location,omitempty"`
	CenterName *string    `json:"center_name,omitempty"`
	FoodID     *uint      `json:"food_id,omitempty"`
	FoodName   *string    `json:"food_name,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// DisplayName is the food name when present, otherwise the stall name.
func (f FavoriteRow) DisplayName() string {
	if f.FoodName != nil && *f.FoodName != "" {
		return *f.FoodName
	}
	if f.StallName != nil {
		return *f.StallName
	}
	return ""
}

type RecommendationRow struct {
	Recommendation
	Username   string  `json:"username"`
	StallName  string  `json:"stall_name"`
	FoodName   *string `json:"food_name,omitempty"`
	CenterName *string `json:"center_name,omitempty"`
}

// PopularItem aggregates how many users favorited a stall or dish.
type PopularItem struct {
	StallID   *uint   `json:"stall_id,omitempty"`
	StallName *string `json:"stall_name,omitempty"`
	FoodID    *uint   `json:"food_id,omitempty"`
	FoodName  *string `json:"food_name,omitempty"`
	Count     int64   `json:"count"`
}

// Option is an id/label pair used to fill filter and form dropdowns.
type Option struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group,omitempty"`
}
