package domain

// WorldCity is one entry of the world-clock panel.
type WorldCity struct {
	Name     string  `json:"name"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// WorldCities is the built-in city list shown on the world-clock page.
var WorldCities = []WorldCity{
	// Americas
	{Name: "New York", Country: "USA", Timezone: "America/New_York", Lat: 40.7128, Lng: -74.0060},
	{Name: "Los Angeles", Country: "USA", Timezone: "America/Los_Angeles", Lat: 34.0522, Lng: -118.2437},
	{Name: "Chicago", Country: "USA", Timezone: "America/Chicago", Lat: 41.8781, Lng: -87.6298},
	{Name: "Toronto", Country: "Canada", Timezone: "America/Toronto", Lat: 43.6532, Lng: -79.3832},
	{Name: "Mexico City", Country: "Mexico", Timezone: "America/Mexico_City", Lat: 19.4326, Lng: -99.1332},
	{Name: "São Paulo", Country: "Brazil", Timezone: "America/Sao_Paulo", Lat: -23.5505, Lng: -46.6333},
	{Name: "Buenos Aires", Country: "Argentina", Timezone: "America/Argentina/Buenos_Aires", Lat: -34.6037, Lng: -58.3816},

	// Europe
	{Name: "London", Country: "UK", Timezone: "Europe/London", Lat: 51.5074, Lng: -0.1278},
	{Name: "Paris", Country: "France", Timezone: "Europe/Paris", Lat: 48.8566, Lng: 2.3522},
	{Name: "Berlin", Country: "Germany", Timezone: "Europe/Berlin", Lat: 52.5200, Lng: 13.4050},
	{Name: "Madrid", Country: "Spain", Timezone: "Europe/Madrid", Lat: 40.4168, Lng: -3.7038},
	{Name: "Rome", Country: "Italy", Timezone: "Europe/Rome", Lat: 41.9028, Lng: 12.4964},
	{Name: "Moscow", Country: "Russia", Timezone: "Europe/Moscow", Lat: 55.7558, Lng: 37.6173},
	{Name: "Istanbul", Country: "Turkey", Timezone: "Europe/Istanbul", Lat: 41.0082, Lng: 28.9784},

	// Asia
	{Name: "Dubai", Country: "UAE", Timezone: "Asia/Dubai", Lat: 25.2048, Lng: 55.2708},
	{Name: "Mumbai", Country: "India", Timezone: "Asia/Kolkata", Lat: 19.0760, Lng: 72.8777},
	{Name: "Singapore", Country: "Singapore", Timezone: "Asia/Singapore", Lat: 1.3521, Lng: 103.8198},
	{Name: "Hong Kong", Country: "Hong Kong", Timezone: "Asia/Hong_Kong", Lat: 22.3193, Lng: 114.1694},
	{Name: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo", Lat: 35.6762, Lng: 139.6503},
	{Name: "Seoul", Country: "South Korea", Timezone: "Asia/Seoul", Lat: 37.5665, Lng: 126.9780},
	{Name: "Shanghai", Country: "China", Timezone: "Asia/Shanghai", Lat: 31.2304, Lng: 121.4737},
	{Name: "Bangkok", Country: "Thailand", Timezone: "Asia/Bangkok", Lat: 13.7563, Lng: 100.5018},

	// Oceania
	{Name: "Sydney", Country: "Australia", Timezone: "Australia/Sydney", Lat: -33.8688, Lng: 151.2093},
	{Name: "Melbourne", Country: "Australia", Timezone: "Australia/Melbourne", Lat: -37.8136, Lng: 144.9631},
	{Name: "Auckland", Country: "New Zealand", Timezone: "Pacific/Auckland", Lat: -36.8485, Lng: 174.7633},

	// Africa
	{Name: "Cairo", Country: "Egypt", Timezone: "Africa/Cairo", Lat: 30.0444, Lng: 31.2357},
	{Name: "Lagos", Country: "Nigeria", Timezone: "Africa/Lagos", Lat: 6.5244, Lng: 3.3792},
	{Name: "Johannesburg", Country: "South Africa", Timezone: "Africa/Johannesburg", Lat: -26.2041, Lng: 28.0473},
}
