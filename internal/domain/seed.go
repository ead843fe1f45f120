package domain

// DefaultCatalog returns the built-in demo catalog used to seed an empty
// inventory. Callers receive a fresh slice on every call.
func DefaultCatalog() []Product {
	return []Product{
		{ID: "p1", Name: "Café en grano 500g", Price: 8.5, Stock: 12, ImageURL: "/img/cafe.jpg"},
		{ID: "p2", Name: "Té verde orgánico", Price: 6.9, Stock: 15, ImageURL: "/img/te.jpg"},
		{ID: "p3", Name: "Miel pura 300ml", Price: 5.75, Stock: 10, ImageURL: "/img/miel.jpg"},
		{ID: "p4", Name: "Galletas avena", Price: 3.25, Stock: 20, ImageURL: "/img/galleta.jpg"},
		{ID: "p5", Name: "Chocolate 70%", Price: 4.8, Stock: 18, ImageURL: "/img/chocolate.jpg"},
		{ID: "p6", Name: "Granola 400g", Price: 7.2, Stock: 8, ImageURL: "/img/granola.jpg"},
		{ID: "p7", Name: "Cereal crujiente", Price: 4.1, Stock: 22, ImageURL: "/img/cereal.jpg"},
		{ID: "p8", Name: "Leche de almendras", Price: 3.9, Stock: 14, ImageURL: "/img/leche.jpg"},
		{ID: "p9", Name: "Mantequilla maní", Price: 5.3, Stock: 9, ImageURL: "/img/mantequilla.jpg"},
		{ID: "p10", Name: "Aceite de oliva", Price: 9.9, Stock: 7, ImageURL: "/img/aceite.jpg"},
		{ID: "p11", Name: "Atún en agua", Price: 2.6, Stock: 25, ImageURL: "/img/atun.jpg"},
		{ID: "p12", Name: "Pasta integral", Price: 2.9, Stock: 30, ImageURL: "/img/pasta.jpg"},
		{ID: "p13", Name: "Pan integral", Price: 5.8, Stock: 10, ImageURL: "/img/pan.jpg"},
		{ID: "p14", Name: "Piña", Price: 3.5, Stock: 12, ImageURL: "/img/pina.jpg"},
		{ID: "p15", Name: "Zanahoria lb", Price: 0.9, Stock: 30, ImageURL: "/img/zanahoria.jpg"},
		{ID: "p16", Name: "Arroz", Price: 0.75, Stock: 35, ImageURL: "/img/arroz.jpg"},
		{ID: "p17", Name: "Yogurt griego", Price: 1.0, Stock: 6, ImageURL: "/img/yogurt.jpg"},
		{ID: "p18", Name: "Cartón de huevos", Price: 5.0, Stock: 20, ImageURL: "/img/huevos.jpg"},
		{ID: "p19", Name: "Alimento para perros", Price: 43.0, Stock: 16, ImageURL: "/img/perros.jpg"},
		{ID: "p20", Name: "Arándanos congelados", Price: 5.6, Stock: 9, ImageURL: "/img/arandanos.jpg"},
	}
}
