package models

// ViewCount is the "Showing X of Y" pair displayed under a filtered view.
type ViewCount struct {
	Filtered int `json:"filtered"`
	Total    int `json:"total"`
}

// RoomInsightReport holds the computed analytics over a filtered room view.
type RoomInsightReport struct {
	Count         ViewCount
	AveragePrice  float64
	MinPrice      float64
	MaxPrice      float64
	MostExpensive *Room
	ByCity        map[string]int
	ByRoomType    map[string]int
}

// ReviewInsightReport summarises a filtered review view.
type ReviewInsightReport struct {
	Count         ViewCount
	AverageRating float64
	TopRated      []*Review
}
