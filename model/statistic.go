package model

type StatisticToday struct {
	Date           string  `json:"date"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalTickets   int     `json:"totalTickets"`
	TotalCustomers int     `json:"totalCustomers"`
}

type StatisticYesterday struct {
	Date                    string  `json:"date"`
	TotalRevenueYesterday   float64 `json:"totalRevenueYesterday"`
	TotalTicketsYesterday   int     `json:"totalTicketsYesterday"`
	TotalCustomersYesterday int     `json:"totalCustomersYesterday"`
}

type StatisticGrowth struct {
	Revenue   float64 `json:"revenue"`
	Tickets   float64 `json:"tickets"`
	Customers float64 `json:"customers"`
}

type DashboardToday struct {
	Today     StatisticToday     `json:"today"`
	Yesterday StatisticYesterday `json:"yesterday"`
	Growth    StatisticGrowth    `json:"growth"`
	FetchedAt string             `json:"fetchedAt"`
}

type StatisticPeriodInput struct {
	Year  int  `json:"year" validate:"required,gte=1900,lte=9999"`
	Month *int `json:"month,omitempty" validate:"omitempty,gte=1,lte=12"`
	Week  *int `json:"week,omitempty" validate:"omitempty,gte=1,lte=53"`
}
