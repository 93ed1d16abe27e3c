package stations

// Station is a synthetic named measurement source. Mean and Spread
// parameterize the distribution of temperatures attributed to it.
type Station struct {
	Name   string
	Mean   float64
	Spread float64
}

// reference is the built-in pool of station names with mean annual
// temperatures, in the tradition of the billion row challenge dataset.
var reference = []Station{
	{Name: "Abha", Mean: 18.0},
	{Name: "Abidjan", Mean: 26.0},
	{Name: "Accra", Mean: 26.4},
	{Name: "Addis Ababa", Mean: 16.0},
	{Name: "Adelaide", Mean: 17.3},
	{Name: "Alexandria", Mean: 20.0},
	{Name: "Algiers", Mean: 18.2},
	{Name: "Almaty", Mean: 10.0},
	{Name: "Amsterdam", Mean: 10.2},
	{Name: "Anchorage", Mean: 2.8},
	{Name: "Ankara", Mean: 12.0},
	{Name: "Antananarivo", Mean: 17.9},
	{Name: "Athens", Mean: 19.2},
	{Name: "Atlanta", Mean: 17.0},
	{Name: "Auckland", Mean: 15.2},
	{Name: "Baghdad", Mean: 22.77},
	{Name: "Baku", Mean: 15.1},
	{Name: "Bamako", Mean: 27.8},
	{Name: "Bangkok", Mean: 28.6},
	{Name: "Barcelona", Mean: 18.2},
	{Name: "Beijing", Mean: 12.9},
	{Name: "Beirut", Mean: 20.9},
	{Name: "Belgrade", Mean: 12.5},
	{Name: "Bergen", Mean: 7.7},
	{Name: "Berlin", Mean: 10.3},
	{Name: "Bogotá", Mean: 14.3},
	{Name: "Bordeaux", Mean: 14.2},
	{Name: "Bosaso", Mean: 30.0},
	{Name: "Boston", Mean: 10.9},
	{Name: "Brisbane", Mean: 21.4},
	{Name: "Brussels", Mean: 10.5},
	{Name: "Bucharest", Mean: 10.8},
	{Name: "Budapest", Mean: 11.3},
	{Name: "Buenos Aires", Mean: 18.2},
	{Name: "Cairo", Mean: 21.4},
	{Name: "Calgary", Mean: 4.4},
	{Name: "Canberra", Mean: 13.1},
	{Name: "Cape Town", Mean: 16.2},
	{Name: "Casablanca", Mean: 17.7},
	{Name: "Chicago", Mean: 9.8},
	{Name: "Chihuahua", Mean: 18.6},
	{Name: "Chișinău", Mean: 10.2},
	{Name: "Colombo", Mean: 27.4},
	{Name: "Copenhagen", Mean: 9.1},
	{Name: "Dakar", Mean: 24.0},
	{Name: "Dallas", Mean: 19.0},
	{Name: "Damascus", Mean: 17.0},
	{Name: "Dar es Salaam", Mean: 25.8},
	{Name: "Darwin", Mean: 27.6},
	{Name: "Denver", Mean: 10.4},
	{Name: "Dhaka", Mean: 25.9},
	{Name: "Dikson", Mean: -11.1},
	{Name: "Dodoma", Mean: 22.7},
	{Name: "Dubai", Mean: 26.9},
	{Name: "Dublin", Mean: 9.8},
	{Name: "Dunedin", Mean: 11.1},
	{Name: "Edinburgh", Mean: 9.3},
	{Name: "Erbil", Mean: 19.5},
	{Name: "Fairbanks", Mean: -2.3},
	{Name: "Fukuoka", Mean: 17.0},
	{Name: "Gaborone", Mean: 21.0},
	{Name: "Gangtok", Mean: 15.2},
	{Name: "Garissa", Mean: 29.3},
	{Name: "Gjoa Haven", Mean: -14.4},
	{Name: "Guadalajara", Mean: 20.9},
	{Name: "Guangzhou", Mean: 22.4},
	{Name: "Guatemala City", Mean: 20.4},
	{Name: "Halifax", Mean: 7.5},
	{Name: "Hamburg", Mean: 9.7},
	{Name: "Hanoi", Mean: 23.6},
	{Name: "Harare", Mean: 18.4},
	{Name: "Harbin", Mean: 5.0},
	{Name: "Havana", Mean: 25.2},
	{Name: "Helsinki", Mean: 5.9},
	{Name: "Ho Chi Minh City", Mean: 27.4},
	{Name: "Hobart", Mean: 12.7},
	{Name: "Hong Kong", Mean: 23.3},
	{Name: "Honiara", Mean: 26.5},
	{Name: "Honolulu", Mean: 25.4},
	{Name: "Houston", Mean: 20.8},
	{Name: "Irkutsk", Mean: 1.0},
	{Name: "Istanbul", Mean: 13.9},
	{Name: "Jakarta", Mean: 26.7},
	{Name: "Johannesburg", Mean: 15.5},
	{Name: "Juba", Mean: 27.8},
	{Name: "Kabul", Mean: 12.1},
	{Name: "Kampala", Mean: 20.0},
	{Name: "Karachi", Mean: 26.0},
	{Name: "Kathmandu", Mean: 18.3},
	{Name: "Khartoum", Mean: 29.9},
	{Name: "Kingston", Mean: 27.4},
	{Name: "Kinshasa", Mean: 25.3},
	{Name: "Kolkata", Mean: 26.7},
	{Name: "Kuala Lumpur", Mean: 27.3},
	{Name: "Kumasi", Mean: 26.0},
	{Name: "Kyiv", Mean: 8.4},
	{Name: "Kyoto", Mean: 15.8},
	{Name: "La Paz", Mean: 7.0},
	{Name: "Lagos", Mean: 26.8},
	{Name: "Lahore", Mean: 24.3},
	{Name: "Las Vegas", Mean: 20.3},
	{Name: "Lhasa", Mean: 7.6},
	{Name: "Lima", Mean: 19.2},
	{Name: "Lisbon", Mean: 17.5},
	{Name: "Ljubljana", Mean: 10.9},
	{Name: "Lodwar", Mean: 29.3},
	{Name: "Lomé", Mean: 26.9},
	{Name: "London", Mean: 11.3},
	{Name: "Los Angeles", Mean: 18.6},
	{Name: "Louisville", Mean: 13.9},
	{Name: "Luanda", Mean: 25.8},
	{Name: "Lusaka", Mean: 19.9},
	{Name: "Luxembourg City", Mean: 9.3},
	{Name: "Lyon", Mean: 12.5},
	{Name: "Madrid", Mean: 15.0},
	{Name: "Makassar", Mean: 26.7},
	{Name: "Malé", Mean: 28.0},
	{Name: "Managua", Mean: 27.3},
	{Name: "Manila", Mean: 28.4},
	{Name: "Marrakesh", Mean: 19.6},
	{Name: "Marseille", Mean: 15.8},
	{Name: "Mecca", Mean: 30.7},
	{Name: "Melbourne", Mean: 15.1},
	{Name: "Memphis", Mean: 17.2},
	{Name: "Mexico City", Mean: 17.5},
	{Name: "Miami", Mean: 24.9},
	{Name: "Milan", Mean: 13.0},
	{Name: "Minneapolis", Mean: 7.8},
	{Name: "Minsk", Mean: 6.7},
	{Name: "Mogadishu", Mean: 27.1},
	{Name: "Mombasa", Mean: 26.3},
	{Name: "Monaco", Mean: 16.4},
	{Name: "Moncton", Mean: 6.1},
	{Name: "Monterrey", Mean: 22.3},
	{Name: "Montreal", Mean: 6.8},
	{Name: "Moscow", Mean: 5.8},
	{Name: "Mumbai", Mean: 27.1},
	{Name: "Murmansk", Mean: 0.6},
	{Name: "Muscat", Mean: 28.0},
	{Name: "Nairobi", Mean: 17.8},
	{Name: "Nakhon Ratchasima", Mean: 27.3},
	{Name: "Naples", Mean: 15.9},
	{Name: "Nashville", Mean: 15.4},
	{Name: "Nassau", Mean: 24.6},
	{Name: "Ndola", Mean: 20.3},
	{Name: "New Delhi", Mean: 25.0},
	{Name: "New Orleans", Mean: 20.7},
	{Name: "New York City", Mean: 12.9},
	{Name: "Nicosia", Mean: 19.7},
	{Name: "Niigata", Mean: 13.9},
	{Name: "Nouakchott", Mean: 25.7},
	{Name: "Novosibirsk", Mean: 1.7},
	{Name: "Nuuk", Mean: -1.4},
	{Name: "Odesa", Mean: 10.7},
	{Name: "Oslo", Mean: 5.7},
	{Name: "Ottawa", Mean: 6.6},
	{Name: "Ouagadougou", Mean: 28.3},
	{Name: "Palermo", Mean: 18.5},
	{Name: "Palmerston North", Mean: 13.2},
	{Name: "Panama City", Mean: 28.0},
	{Name: "Paris", Mean: 12.3},
	{Name: "Perth", Mean: 18.7},
	{Name: "Petropavlovsk-Kamchatsky", Mean: 1.9},
	{Name: "Philadelphia", Mean: 13.2},
	{Name: "Phnom Penh", Mean: 28.3},
	{Name: "Phoenix", Mean: 23.9},
	{Name: "Pittsburgh", Mean: 10.8},
	{Name: "Podgorica", Mean: 15.3},
	{Name: "Pontianak", Mean: 27.7},
	{Name: "Port Moresby", Mean: 26.9},
	{Name: "Portland", Mean: 12.4},
	{Name: "Porto", Mean: 15.7},
	{Name: "Prague", Mean: 8.4},
	{Name: "Pretoria", Mean: 18.2},
	{Name: "Pyongyang", Mean: 10.8},
	{Name: "Rabat", Mean: 17.2},
	{Name: "Rangpur", Mean: 24.4},
	{Name: "Reggane", Mean: 28.3},
	{Name: "Reykjavík", Mean: 4.3},
	{Name: "Riga", Mean: 6.2},
	{Name: "Riyadh", Mean: 26.0},
	{Name: "Rome", Mean: 15.2},
	{Name: "Roseau", Mean: 26.2},
	{Name: "Rostov-on-Don", Mean: 9.9},
	{Name: "Sacramento", Mean: 16.3},
	{Name: "Saint Petersburg", Mean: 5.8},
	{Name: "Saint-Pierre", Mean: 5.7},
	{Name: "Salt Lake City", Mean: 11.6},
	{Name: "San Antonio", Mean: 20.8},
	{Name: "San Diego", Mean: 17.8},
	{Name: "San Francisco", Mean: 14.6},
	{Name: "San Jose", Mean: 16.4},
	{Name: "San Juan", Mean: 27.2},
	{Name: "San Salvador", Mean: 23.1},
	{Name: "Sana'a", Mean: 20.0},
	{Name: "Santiago", Mean: 14.3},
	{Name: "Santo Domingo", Mean: 25.9},
	{Name: "São Paulo", Mean: 19.2},
	{Name: "Sapporo", Mean: 8.9},
	{Name: "Sarajevo", Mean: 10.1},
	{Name: "Saskatoon", Mean: 3.3},
	{Name: "Seattle", Mean: 11.3},
	{Name: "Seoul", Mean: 12.5},
	{Name: "Seville", Mean: 19.2},
	{Name: "Shanghai", Mean: 16.7},
	{Name: "Singapore", Mean: 27.0},
	{Name: "Skopje", Mean: 12.4},
	{Name: "Sochi", Mean: 14.2},
	{Name: "Sofia", Mean: 10.6},
	{Name: "Stockholm", Mean: 6.6},
	{Name: "Surabaya", Mean: 27.1},
	{Name: "Suva", Mean: 25.6},
	{Name: "Suwałki", Mean: 7.2},
	{Name: "Sydney", Mean: 17.7},
	{Name: "Tabora", Mean: 23.0},
	{Name: "Tabriz", Mean: 12.6},
	{Name: "Taipei", Mean: 23.0},
	{Name: "Tallinn", Mean: 6.4},
	{Name: "Tamanrasset", Mean: 21.7},
	{Name: "Tampa", Mean: 22.9},
	{Name: "Tashkent", Mean: 14.8},
	{Name: "Tauranga", Mean: 14.8},
	{Name: "Tbilisi", Mean: 12.9},
	{Name: "Tegucigalpa", Mean: 21.7},
	{Name: "Tehran", Mean: 17.0},
	{Name: "Tel Aviv", Mean: 20.0},
	{Name: "Thessaloniki", Mean: 16.0},
	{Name: "Tijuana", Mean: 17.8},
	{Name: "Timbuktu", Mean: 28.0},
	{Name: "Tirana", Mean: 15.2},
	{Name: "Tokyo", Mean: 15.4},
	{Name: "Toronto", Mean: 9.4},
	{Name: "Toulouse", Mean: 13.9},
	{Name: "Tripoli", Mean: 20.0},
	{Name: "Tromsø", Mean: 2.9},
	{Name: "Tucson", Mean: 20.9},
	{Name: "Tunis", Mean: 18.4},
	{Name: "Ulaanbaatar", Mean: -0.4},
	{Name: "Upington", Mean: 20.4},
	{Name: "Ürümqi", Mean: 7.4},
	{Name: "Vancouver", Mean: 10.4},
	{Name: "Veracruz", Mean: 25.4},
	{Name: "Vienna", Mean: 10.4},
	{Name: "Vientiane", Mean: 25.9},
	{Name: "Villahermosa", Mean: 27.1},
	{Name: "Vilnius", Mean: 6.0},
	{Name: "Virginia Beach", Mean: 15.8},
	{Name: "Vladivostok", Mean: 4.9},
	{Name: "Warsaw", Mean: 8.5},
	{Name: "Washington, D.C.", Mean: 14.6},
	{Name: "Wau", Mean: 27.8},
	{Name: "Wellington", Mean: 12.9},
	{Name: "Whitehorse", Mean: -0.1},
	{Name: "Wichita", Mean: 13.9},
	{Name: "Willemstad", Mean: 28.0},
	{Name: "Winnipeg", Mean: 3.0},
	{Name: "Wrocław", Mean: 9.6},
	{Name: "Xi'an", Mean: 14.1},
	{Name: "Yakutsk", Mean: -8.8},
	{Name: "Yangon", Mean: 27.5},
	{Name: "Yaoundé", Mean: 23.8},
	{Name: "Yellowknife", Mean: -4.3},
	{Name: "Yerevan", Mean: 12.4},
	{Name: "Yinchuan", Mean: 9.0},
	{Name: "Zagreb", Mean: 10.7},
	{Name: "Zanzibar City", Mean: 26.0},
	{Name: "Zürich", Mean: 9.3},
}

// ReferenceCount returns the size of the built-in station name pool.
func ReferenceCount() int {
	return len(reference)
}
