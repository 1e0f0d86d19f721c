package catalog

import "github.com/fwojciec/plfhelper"

var builtinPhrases = map[plfhelper.Locale]plfhelper.LocaleConfig{
	plfhelper.LocaleEnglish: {
		Currency:         "wT",
		MarketWelcome:    "Welcome to the market place!",
		CurrentOffers:    "Current offers",
		Total:            "Total",
		DeleteFilter:     "[Delete filter - show all offers]",
		ListOfAllPlayers: "List of all players according to score",
		PlayersTotal:     "Players total:",
		ShowMyRanking:    "Show my ranking",
		Back:             "<<< back",
		Forward:          "forward >>>",
	},
	plfhelper.LocaleGerman: {
		Currency:         "gB",
		MarketWelcome:    "Willkommen auf dem großen Marktplatz!",
		CurrentOffers:    "Aktuelle Angebote",
		Total:            "Gesamt",
		DeleteFilter:     "[Filter löschen - alle Angebote zeigen]",
		ListOfAllPlayers: "Liste aller Spieler nach Punktzahl",
		PlayersTotal:     "Spieler gesamt:",
		ShowMyRanking:    "wo bin ich?",
		Back:             "<<< zurück",
		Forward:          "weiter >>>",
	},
	plfhelper.LocaleDutch: {
		Currency:         "gB",
		MarketWelcome:    "Welkom op de marktplaats!",
		CurrentOffers:    "Huidige aanbiedingen",
		Total:            "Totaal",
		DeleteFilter:     "[Verwijder filter - laat alle aanbiedingen zien]",
		ListOfAllPlayers: "Lijst met alle spelers gesorteerd op de hoogte van de scores",
		PlayersTotal:     "Spelers totaal:",
		ShowMyRanking:    "Waar ben ik?",
		Back:             "<<< terug",
		Forward:          "verder >>>",
	},
}

var builtinProducts = map[plfhelper.Locale][]string{
	plfhelper.LocaleEnglish: {
		"Lettuce", "Carrots", "Cucumbers", "Radish", "Strawberries",
		"Tomatoes", "Onions", "Spinach", "Cauliflower", "Potatoes",
		"Asparagus", "Zucchini", "Blueberries", "Raspberries", "Red currants",
		"Blackberries", "Mirabelles", "Apples", "Pumpkin", "Pears",
		"Red cabbage", "Cherries", "Plums", "Walnuts", "Olives",
		"Sunflowers", "Cornflowers", "Daffodils", "Gerber daisy", "Tulips",
		"Roses", "Lilies", "Orchids", "Crocus", "Cow lily",
		"Water parsnip", "Water violet", "Water soldier", "Water lily", "Water knotweed",
		"Marsh marigold", "Swamp lantern", "Angel's trumpet",
	},
	plfhelper.LocaleGerman: {
		"Salat", "Karotten", "Gurken", "Radieschen", "Erdbeeren",
		"Tomaten", "Zwiebeln", "Spinat", "Blumenkohl", "Kartoffeln",
		"Spargel", "Zucchini", "Heidelbeeren", "Himbeeren", "Johannisbeeren",
		"Brombeeren", "Mirabellen", "Äpfel", "Kürbis", "Birnen",
		"Rotkohl", "Kirschen", "Pflaumen", "Walnüsse", "Oliven",
		"Sonnenblumen", "Kornblumen", "Narzissen", "Gerbera", "Tulpen",
		"Rosen", "Lilien", "Orchideen", "Krokus", "gelbe Teichrose",
		"Wasserpastinake", "Sumpfveilchen", "Krebsschere", "Seerose", "Wasserknöterich",
		"Sumpfdotterblume", "Stinktierkohl", "Engelstrompete",
	},
	plfhelper.LocaleDutch: {
		"Sla", "Wortelen", "Komkommers", "Radijs", "Aardbeien",
		"Tomaten", "Uien", "Spinazie", "Bloemkool", "Aardappelen",
		"Asperges", "Courgette", "Bosbessen", "Frambozen", "Rode aalbes",
		"Bramen", "Mirabellen", "Appels", "Pompoen", "Peren",
		"Rode kool", "Kersen", "Pruimen", "Walnoten", "Olijven",
		"Zonnebloemen", "Korenbloemen", "Narcissen", "Gerbera", "Tulpen",
		"Rozen", "Lelies", "Orchideeën", "Krokus", "Koe lelie",
		"Water pastinaak", "Waterviolier", "Krabbenscheer", "Waterlelie", "Duizendknoop",
		"Dotterbloem", "Moeraslantaarn", "Engelentrompet",
	},
}
