package memstore

import "github.com/idilsaglam/superheroes/internal/model"

// Sample returns the built-in demo roster.
func Sample() []model.Hero {
	return []model.Hero{
		{
			Name:        "Scarlet Witch",
			ImageURL:    "https://i.annihil.us/u/prod/marvel/i/mg/9/b0/537bc2375dfb9.jpg",
			IsAvenger:   true,
			Description: "Wanda Maximoff can tap into chaos magic to reshape probability and reality itself.",
		},
		{
			Name:        "Iron Man",
			ImageURL:    "https://i.annihil.us/u/prod/marvel/i/mg/c/60/55b6a28ef24fa.jpg",
			IsAvenger:   true,
			Description: "Tony Stark, genius inventor and industrialist, fights in a powered suit of armor he built himself.",
		},
		{
			Name:        "Wolverine",
			ImageURL:    "https://i.annihil.us/u/prod/marvel/i/mg/2/60/537bcaef0f6cf.jpg",
			IsAvenger:   false,
			Description: "A mutant with a healing factor, heightened senses and an adamantium-laced skeleton.",
		},
		{
			Name:        "Hulk",
			ImageURL:    "https://i.annihil.us/u/prod/marvel/i/mg/e/e0/537bafa34baa9.jpg",
			IsAvenger:   true,
			Description: "Gamma radiation turned Bruce Banner into a creature whose strength grows with his rage.",
		},
		{
			Name:        "Storm",
			ImageURL:    "https://x.annihil.us/u/prod/marvel/i/mg/c/b0/537bc5f8a8df0.jpg",
			IsAvenger:   false,
			Description: "Ororo Munroe commands the weather, from gentle breezes to lightning storms.",
		},
		{
			Name:        "Spider-Man",
			ImageURL:    "https://x.annihil.us/u/prod/marvel/i/mg/9/30/538cd33e15ab7.jpg",
			IsAvenger:   true,
			Description: "Bitten by a radioactive spider, Peter Parker learned that great power brings great responsibility.",
		},
		{
			Name:        "Ant-Man",
			ImageURL:    "https://i.annihil.us/u/prod/marvel/i/mg/e/20/52696868356a0.jpg",
			IsAvenger:   true,
			Description: "Scott Lang shrinks to the size of an insect while keeping the strength of a full-sized man.",
		},
		{
			Name:        "Daredevil",
			ImageURL:    "https://x.annihil.us/u/prod/marvel/i/mg/6/90/537ba6d49472b.jpg",
			IsAvenger:   false,
			Description: "Blinded as a boy, Matt Murdock fights crime in Hell's Kitchen with his remaining senses heightened.",
		},
		{
			Name:        "Captain Marvel",
			ImageURL:    "https://i.annihil.us/u/prod/marvel/i/mg/c/10/537ba5ff07aa4.jpg",
			IsAvenger:   true,
			Description: "Carol Danvers absorbs and projects energy after her DNA fused with that of a Kree warrior.",
		},
	}
}
