package services

import "teslo/internal/models"

// seedProducts are the fixture products inserted by RunSeed.
var seedProducts = []models.CreateProductRequest{
	{
		Title:       "Mens Chill Crew Neck Sweatshirt",
		Description: "Introducing the Tesla Chill Collection. The Mens Chill Crew Neck Sweatshirt has a premium, heavyweight exterior and soft fleece interior for comfort in any season.",
		Price:       75,
		Stock:       7,
		Gender:      "man",
		Type:        "shirts",
		Tags:        []string{"sweatshirt"},
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Mens Quilted Shirt Jacket",
		Description: "The Mens Quilted Shirt Jacket features a uniquely fit, quilted design for warmth and mobility in cold weather seasons.",
		Price:       200,
		Stock:       5,
		Gender:      "man",
		Type:        "shirts",
		Tags:        []string{"jacket"},
		Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Mens Raven Lightweight Zip Up Bomber Jacket",
		Description: "A lightweight bomber jacket with a subtle thermoplastic polyurethane Tesla logo on the left chest and a Tesla wordmark below the back collar.",
		Price:       130,
		Stock:       10,
		Gender:      "man",
		Type:        "shirts",
		Tags:        []string{"shirt"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
	},
	{
		Title:       "Mens Turbine Long Sleeve Tee",
		Description: "Designed for comfort, the Turbine Long Sleeve Tee is made from 100% cotton and features a silicone printed T logo on the left chest.",
		Price:       45,
		Stock:       50,
		Gender:      "man",
		Type:        "shirts",
		Tags:        []string{"shirt"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
	},
	{
		Title:       "Mens Turbine Short Sleeve Tee",
		Description: "Made from 100% cotton, the Turbine Short Sleeve Tee features a subtle tonal T logo on the left chest.",
		Price:       40,
		Stock:       50,
		Gender:      "man",
		Type:        "shirts",
		Tags:        []string{"shirt"},
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Images:      []string{"1741416-00-A_0_2000.jpg", "1741416-00-A_1.jpg"},
	},
	{
		Title:       "Womens Cropped Puffer Jacket",
		Description: "The Womens Cropped Puffer Jacket features a uniquely cropped silhouette for the perfect, modern style while on the go during the cozy season ahead.",
		Price:       225,
		Stock:       85,
		Gender:      "woman",
		Type:        "hoodies",
		Tags:        []string{"hoodie"},
		Sizes:       []string{"XS", "S", "M"},
		Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		Title:       "Womens Chill Half Zip Cropped Hoodie",
		Description: "Introducing the Tesla Chill Collection. The Womens Chill Half Zip Cropped Hoodie has a premium, soft fleece exterior and cropped silhouette for comfort in everyday lifestyle.",
		Price:       130,
		Stock:       10,
		Gender:      "woman",
		Type:        "hoodies",
		Tags:        []string{"hoodie"},
		Sizes:       []string{"XS", "S", "M", "XXL"},
		Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
	},
	{
		Title:       "Womens Raven Slouchy Crew Sweatshirt",
		Description: "Introducing the Tesla Raven Collection. The Womens Raven Slouchy Crew Sweatshirt has a premium, relaxed silhouette made from a sustainable bamboo cotton blend.",
		Price:       110,
		Stock:       9,
		Gender:      "woman",
		Type:        "hoodies",
		Tags:        []string{"hoodie"},
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Images:      []string{"1740260-00-A_0_2000.jpg", "1740260-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cybertruck Long Sleeve Tee",
		Description: "Designed for fit, comfort and style, the Kids Cybertruck Graffiti Long Sleeve Tee features a water-based Cybertruck graffiti wordmark across the chest.",
		Price:       30,
		Stock:       10,
		Gender:      "kid",
		Type:        "shirts",
		Tags:        []string{"shirt"},
		Sizes:       []string{"XS", "S", "M"},
		Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
	},
	{
		Title:       "Kids Scribble T Logo Tee",
		Description: "The Kids Scribble T Logo Tee highlights a hand-drawn T logo made from organic cotton.",
		Price:       25,
		Stock:       0,
		Gender:      "kid",
		Type:        "shirts",
		Tags:        []string{"shirt"},
		Sizes:       []string{"XS", "S", "M"},
		Images:      []string{"8529312-00-A_0_2000.jpg", "8529312-00-A_1.jpg"},
	},
	{
		Title:       "Tesla Cap",
		Description: "Classic baseball cap with a T logo embroidered on the front.",
		Price:       30,
		Stock:       40,
		Gender:      "unisex",
		Type:        "hats",
		Tags:        []string{"hats"},
		Sizes:       []string{},
		Images:      []string{"1657932-00-A_0_2000.jpg"},
	},
	{
		Title:       "Made on Earth by Humans Tee",
		Description: "Inspired by our popular home delivery service, the Made on Earth by Humans Tee is made from 100% organic cotton.",
		Price:       35,
		Stock:       20,
		Gender:      "unisex",
		Type:        "shirts",
		Tags:        []string{"shirt"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Images:      []string{"1700280-00-A_0_2000.jpg", "1700280-00-A_1.jpg"},
	},
}

// SeedProducts returns a copy of the fixture product inputs.
func SeedProducts() []models.CreateProductRequest {
	out := make([]models.CreateProductRequest, len(seedProducts))
	copy(out, seedProducts)
	return out
}
