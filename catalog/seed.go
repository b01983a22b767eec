package catalog

// DefaultServices is the demo catalog persisted on first run. Runtime edits
// never touch this seed.
func DefaultServices() []OTTService {
	return []OTTService{
		{
			ID:    "netflix",
			Name:  "Netflix Premium",
			Logo:  "https://upload.wikimedia.org/wikipedia/commons/thumb/0/08/Netflix_2015_logo.svg/512px-Netflix_2015_logo.svg.png",
			Color: "#E50914",
			Plans: []OTTPlan{
				{ID: "n1", Name: "Standard (Full HD)", Price: 199, Duration: "1 Month", Features: []string{"2 Screens Access", "1080p Video Quality", "No Ads Ever", "Download on 2 Devices"}},
				{ID: "n2", Name: "Ultra Premium (4K)", Price: 499, Duration: "1 Month", Features: []string{"4 Screens Access", "4K + HDR Quality", "Spatial Audio Support", "Download on 6 Devices"}},
			},
		},
		{
			ID:    "youtube",
			Name:  "YouTube Premium",
			Logo:  "https://upload.wikimedia.org/wikipedia/commons/e/ef/Youtube_logo.png",
			Color: "#FF0000",
			Plans: []OTTPlan{
				{ID: "y1", Name: "Individual Pro", Price: 99, Duration: "1 Month", Features: []string{"Ad-free Experience", "Background Play", "YouTube Music Premium", "Offline Downloads"}},
				{ID: "y2", Name: "Family Shield", Price: 189, Duration: "1 Month", Features: []string{"Up to 5 Family Members", "Dedicated Kids App Access", "All Individual Perks", "Shared Billing"}},
			},
		},
		{
			ID:    "disney",
			Name:  "Disney+ Hotstar",
			Logo:  "https://upload.wikimedia.org/wikipedia/commons/thumb/1/1e/Disney%2B_Hotstar_logo.svg/512px-Disney%2B_Hotstar_logo.svg.png",
			Color: "#0063E5",
			Plans: []OTTPlan{
				{ID: "d1", Name: "Super Saver", Price: 149, Duration: "3 Months", Features: []string{"2 Devices Support", "1080p Video Quality", "Live Sports Access", "Standard Audio"}},
				{ID: "d2", Name: "Premium Elite", Price: 299, Duration: "3 Months", Features: []string{"4 Devices Support", "4K Video Quality", "Ad-free (Except Sports)", "Dolby Atmos Audio"}},
			},
		},
		{
			ID:    "prime",
			Name:  "Amazon Prime",
			Logo:  "https://upload.wikimedia.org/wikipedia/commons/f/f1/Prime_Video.png",
			Color: "#00A8E1",
			Plans: []OTTPlan{
				{ID: "p1", Name: "Annual Gold", Price: 999, Duration: "1 Year", Features: []string{"4K Streaming", "Fast Free Delivery", "Prime Music Unlimited", "Prime Reading"}},
				{ID: "p2", Name: "Lite Experience", Price: 599, Duration: "1 Year", Features: []string{"HD Streaming Only", "Fast Free Delivery", "Ad-supported Video", "Limited Music"}},
			},
		},
	}
}
