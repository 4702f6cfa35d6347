package domain

// Location is a shooting spot offered on the booking form
type Location struct {
	Key         string
	Name        string
	Description string
}

// Locations is the catalog shown in step 1 of the booking form
var Locations = []Location{
	{Key: "classic", Name: "經典山道", Description: "大帽山 / 飛鵝山 / 汀九"},
	{Key: "industrial", Name: "工業美學", Description: "大潭 / 昂船洲 / 欣澳"},
	{Key: "coastal", Name: "海岸秘境", Description: "東壩 / 布袋澳 / 清水灣"},
}

// LocationByKey looks up a catalog entry
func LocationByKey(key string) (Location, bool) {
	for _, l := range Locations {
		if l.Key == key {
			return l, true
		}
	}
	return Location{}, false
}
