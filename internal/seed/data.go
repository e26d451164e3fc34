package seed

import "apt_planner/internal/models"

type place struct {
	name     string
	kind     string
	lat, lng float64
}

var places = []place{
	{"New Delhi", models.LocationMegaCity, 28.6139, 77.2090},
	{"Mumbai", models.LocationMegaCity, 19.0760, 72.8777},
	{"Bengaluru", models.LocationMegaCity, 12.9716, 77.5946},
	{"Hyderabad", models.LocationMegaCity, 17.3850, 78.4867},
	{"Chennai", models.LocationMegaCity, 13.0827, 80.2707},
	{"Kolkata", models.LocationMegaCity, 22.5726, 88.3639},

	{"Pune", models.LocationCity, 18.5204, 73.8567},
	{"Ahmedabad", models.LocationCity, 23.0225, 72.5714},
	{"Jaipur", models.LocationCity, 26.9124, 75.7873},
	{"Surat", models.LocationCity, 21.1702, 72.8311},
	{"Lucknow", models.LocationCity, 26.8467, 80.9462},
	{"Kanpur", models.LocationCity, 26.4499, 80.3319},
	{"Nagpur", models.LocationCity, 21.1458, 79.0882},
	{"Indore", models.LocationCity, 22.7196, 75.8577},
	{"Thane", models.LocationCity, 19.2183, 72.9781},
	{"Bhopal", models.LocationCity, 23.2599, 77.4126},
	{"Visakhapatnam", models.LocationCity, 17.6868, 83.2185},
	{"Patna", models.LocationCity, 25.5941, 85.1376},
	{"Vadodara", models.LocationCity, 22.3072, 73.1812},
	{"Ghaziabad", models.LocationCity, 28.6692, 77.4538},
	{"Ludhiana", models.LocationCity, 30.9010, 75.8573},
	{"Agra", models.LocationCity, 27.1767, 78.0081},
	{"Nashik", models.LocationCity, 19.9975, 73.7898},
	{"Ranchi", models.LocationCity, 23.3441, 85.3096},
	{"Faridabad", models.LocationCity, 28.4089, 77.3178},
	{"Varanasi", models.LocationCity, 25.3176, 82.9739},
	{"Amritsar", models.LocationCity, 31.6340, 74.8723},
	{"Allahabad", models.LocationCity, 25.4358, 81.8463},
	{"Coimbatore", models.LocationCity, 11.0168, 76.9558},
	{"Vijayawada", models.LocationCity, 16.5062, 80.6480},
}

type corridor struct {
	from, to string
	mode     string
	distKm   float64
	minutes  int
	cost     float64
	perDay   int
}

var corridors = []corridor{
	{"New Delhi", "Mumbai", "1st_ac_train", 1384, 960, 4500, 8},
	{"New Delhi", "Mumbai", "2nd_ac_train", 1384, 960, 2800, 12},
	{"New Delhi", "Mumbai", "3rd_ac_train", 1384, 960, 1800, 15},
	{"New Delhi", "Mumbai", "sleeper_train", 1384, 1080, 800, 20},
	{"New Delhi", "Mumbai", "economy_flight", 1150, 130, 5500, 30},
	{"New Delhi", "Mumbai", "business_flight", 1150, 130, 12000, 10},

	{"Bengaluru", "Hyderabad", "ac_bus", 575, 540, 1200, 40},
	{"Bengaluru", "Hyderabad", "non_ac_bus", 575, 600, 700, 30},
	{"Bengaluru", "Hyderabad", "sleeper_bus", 575, 540, 1500, 25},
	{"Bengaluru", "Hyderabad", "2nd_ac_train", 620, 660, 1400, 6},
	{"Bengaluru", "Hyderabad", "3rd_ac_train", 620, 660, 900, 8},
	{"Bengaluru", "Hyderabad", "economy_flight", 500, 75, 3500, 15},
	{"Bengaluru", "Hyderabad", "private_ac_taxi", 575, 480, 8000, 10},

	{"Mumbai", "Pune", "shared_taxi", 150, 180, 800, 50},
	{"Mumbai", "Pune", "private_ac_taxi", 150, 160, 3000, 40},
	{"Mumbai", "Pune", "ac_bus", 150, 210, 450, 60},
	{"Mumbai", "Pune", "2nd_ac_train", 150, 190, 600, 15},
	{"Mumbai", "Pune", "sleeper_train", 150, 200, 180, 20},

	{"Chennai", "Bengaluru", "1st_ac_train", 350, 300, 1800, 5},
	{"Chennai", "Bengaluru", "3rd_ac_train", 350, 300, 750, 10},
	{"Chennai", "Bengaluru", "ac_bus", 345, 360, 800, 30},
	{"Chennai", "Bengaluru", "economy_flight", 290, 55, 2800, 12},
	{"Chennai", "Bengaluru", "private_taxi", 345, 330, 5000, 15},

	{"New Delhi", "Jaipur", "ac_bus", 280, 300, 700, 25},
	{"New Delhi", "Jaipur", "2nd_ac_train", 310, 240, 900, 8},
	{"New Delhi", "Jaipur", "economy_flight", 260, 55, 3000, 5},
	{"New Delhi", "Jaipur", "private_ac_taxi", 280, 270, 4000, 20},

	{"Hyderabad", "Vijayawada", "ac_bus", 275, 300, 600, 30},
	{"Hyderabad", "Vijayawada", "3rd_ac_train", 350, 330, 550, 12},
	{"Hyderabad", "Vijayawada", "economy_flight", 250, 50, 3200, 4},

	{"Kolkata", "Ranchi", "2nd_ac_train", 420, 480, 1100, 5},
	{"Kolkata", "Ranchi", "ac_bus", 400, 540, 850, 10},
	{"Kolkata", "Ranchi", "economy_flight", 350, 65, 3800, 3},

	// intra-city links
	{"New Delhi", "Ghaziabad", "metro", 25, 45, 60, 100},
	{"New Delhi", "Faridabad", "metro", 30, 50, 70, 80},
	{"Mumbai", "Thane", "metro", 20, 35, 50, 120},
	{"New Delhi", "Ghaziabad", "auto_rickshaw", 25, 60, 350, 50},
	{"Mumbai", "Thane", "auto_rickshaw", 20, 50, 300, 60},
}

type notice struct {
	title, description, severity string
	modes, places                []string
	startOffset, endOffset       int // hours relative to seeding time
}

var notices = []notice{
	{
		title:       "Fog Alert - North India",
		description: "Dense fog affecting train and flight schedules in New Delhi, Agra, and Jaipur. Expect delays.",
		severity:    "high",
		modes:       []string{"1st_ac_train", "2nd_ac_train", "economy_flight"},
		places:      []string{"New Delhi", "Agra", "Jaipur"},
		startOffset: -1,
		endOffset:   24,
	},
	{
		title:       "Mumbai Local Maintenance",
		description: "Mega block on Western Line this Sunday. Reduced frequency for local trains.",
		severity:    "medium",
		modes:       []string{"metro", "sleeper_train"},
		places:      []string{"Mumbai", "Thane"},
		endOffset:   48,
	},
	{
		title:       "Bengaluru Traffic Advisory",
		description: "Heavy traffic expected on Airport Road due to VIP movement. Plan travel accordingly.",
		severity:    "low",
		modes:       []string{"ac_bus", "private_ac_taxi"},
		places:      []string{"Bengaluru"},
		endOffset:   6,
	},
}

type sampleTrip struct {
	from, to string
	mode     string
	cost     float64
	minutes  int
}

var sampleTrips = []sampleTrip{
	{"New Delhi", "Mumbai", "economy_flight", 5500, 130},
	{"Bengaluru", "Hyderabad", "ac_bus", 1200, 540},
	{"Mumbai", "Pune", "shared_taxi", 800, 180},
	{"Chennai", "Bengaluru", "3rd_ac_train", 750, 300},
	{"New Delhi", "Jaipur", "ac_bus", 700, 300},
	{"Hyderabad", "Vijayawada", "3rd_ac_train", 550, 330},
	{"Kolkata", "Ranchi", "2nd_ac_train", 1100, 480},
	{"New Delhi", "Ghaziabad", "metro", 60, 45},
}

var sampleOccasions = []string{"commute", "leisure", "business", "tourism", "wedding", "medical"}
