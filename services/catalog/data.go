package catalog

import "sagashealth/models"

// listings is the static service catalog. Immutable; never written to.
var listings = []models.Service{
	{
		ID:          "1",
		Name:        "Tension-Intervention",
		Category:    "Wellness",
		Description: "Functional Mobility and Injury Prevention for Life Long Health",
		Price:       225,
		Duration:    "Starts from 60 minutes",
		Provider:    "Tension Intervention",
		Rating:      4.9,
		Image:       "https://images.squarespace-cdn.com/content/v1/6665beb550937144dac7cf76/1717946838332-PROZTO5JOSX4W1FRFV1I/Massage+Therapy",
		HSAEligible: true,
		Conditions: []string{
			"Low Back Pain", "Shoulder Pain", "Knee Pain", "Elbow Pain",
			"Hip Pain", "Ankle Pain", "Foot Pain", "Hand Pain", "Wrist Pain",
			"Neck Pain", "Headache",
		},
		Location:    "Greenpoint/Williamsburg",
		Address:     "252 Java Street, Brooklyn, NY 11222",
		Coordinates: models.Coordinates{Lat: 40.7197, Lng: -74.0085},
	},
	{
		ID:          "2",
		Name:        "Your Dream Spa",
		Category:    "Wellness",
		Description: "Your Dream Spa is a luxurious spa that offers a variety of services to help you relax and de-stress.",
		Price:       120,
		Duration:    "Starts from 60 minutes",
		Provider:    "Your Dream Spa",
		Rating:      5.0,
		Image:       "https://lh3.googleusercontent.com/p/AF1QipOubx9ehbcqt465azaPoC8NGqnwTHClYUVZSIlB=w408-h305-k-no",
		HSAEligible: true,
		Conditions:  []string{"Stress", "Anxiety", "Muscle Tension"},
		Location:    "Fidi",
		Address:     "6 Stone St 2 Floor, New York, NY 10004",
		Coordinates: models.Coordinates{Lat: 40.7041, Lng: -74.0124},
	},
	{
		ID:          "3",
		Name:        "Nutritional Counseling",
		Category:    "Nutrition",
		Description: "Registered dietitians provide evidence-based nutrition guidance tailored to your health goals and lifestyle.",
		Price:       150,
		Duration:    "60 minutes",
		Provider:    "NYC Nutrition Collective",
		Rating:      4.8,
		Image:       "/api/placeholder/300/200",
		HSAEligible: true,
		Conditions:  []string{"Diabetes", "High Blood Pressure", "Obesity", "High Cholesterol"},
		Location:    "Midtown",
		Address:     "456 Park Avenue, New York, NY 10022",
		Coordinates: models.Coordinates{Lat: 40.7601, Lng: -73.9708},
	},
	{
		ID:          "4",
		Name:        "Therapeutic Massage",
		Category:    "Wellness",
		Description: "Targeted massage therapy for chronic pain, stress relief, and recovery from musculoskeletal injuries.",
		Price:       175,
		Duration:    "60 minutes",
		Provider:    "Brooklyn Bodyworks",
		Rating:      4.7,
		Image:       "/api/placeholder/300/200",
		HSAEligible: true,
		Conditions:  []string{"Back Pain", "Neck Pain", "Stress", "Sciatica"},
		Location:    "Park Slope",
		Address:     "789 5th Avenue, Brooklyn, NY 11215",
		Coordinates: models.Coordinates{Lat: 40.6681, Lng: -73.985},
	},
	{
		ID:          "5",
		Name:        "Yoga Therapy Session",
		Category:    "Fitness",
		Description: "One-on-one therapeutic yoga addressing anxiety, chronic pain, and mobility limitations.",
		Price:       110,
		Duration:    "75 minutes",
		Provider:    "Still Point Yoga",
		Rating:      4.9,
		Image:       "/api/placeholder/300/200",
		HSAEligible: true,
		Conditions:  []string{"Anxiety", "Depression", "Back Pain", "Sleep Disorders"},
		Location:    "Lower East Side",
		Address:     "120 Essex Street, New York, NY 10002",
		Coordinates: models.Coordinates{Lat: 40.7185, Lng: -73.9881},
	},
	{
		ID:          "6",
		Name:        "Acupuncture Treatment",
		Category:    "Alternative Medicine",
		Description: "Licensed acupuncturists treating chronic pain, migraines, and stress-related conditions.",
		Price:       140,
		Duration:    "45 minutes",
		Provider:    "Five Element Acupuncture",
		Rating:      4.6,
		Image:       "/api/placeholder/300/200",
		HSAEligible: true,
		Conditions:  []string{"Chronic Pain", "Migraines", "Insomnia", "Stress"},
		Location:    "Chelsea",
		Address:     "200 West 23rd Street, New York, NY 10011",
		Coordinates: models.Coordinates{Lat: 40.7443, Lng: -73.9969},
	},
}

// availableTimes is the static appointment slot list shown on the detail page.
var availableTimes = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}
