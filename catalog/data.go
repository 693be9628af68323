package catalog

import "github.com/Ubarrionuevo/distribuidora-leo/models"

// Tablas embebidas. El orden define el orden de presentación.

var defaultCategories = []models.Category{
	{ID: 1, Name: "Cervezas", Slug: "cervezas", Emoji: "🍻", ImageURL: "https://images.unsplash.com/photo-1608270586620-248524c67de9?q=80&w=2070&auto=format&fit=crop"},
	{ID: 2, Name: "Gaseosas", Slug: "gaseosas", Emoji: "🥤", ImageURL: "https://images.unsplash.com/photo-1625772299848-391b6a87d7b3?q=80&w=1974&auto=format&fit=crop"},
	{ID: 3, Name: "Saborizadas y Jugos", Slug: "saborizadas-jugos", Emoji: "🧃", ImageURL: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?q=80&w=2187&auto=format&fit=crop"},
	{ID: 4, Name: "Aguas y Sodas", Slug: "aguas-sodas", Emoji: "🫗", ImageURL: "https://images.unsplash.com/photo-1560023907-5f339617ea30?q=80&w=2070&auto=format&fit=crop"},
	{ID: 5, Name: "Aperitivos", Slug: "aperitivos", Emoji: "🍹", ImageURL: "https://images.unsplash.com/photo-1598373187432-c1ff06874ce8?q=80&w=2070&auto=format&fit=crop"},
	{ID: 6, Name: "Espumantes y Whisky", Slug: "espumantes-whisky", Emoji: "🍾", ImageURL: "https://images.unsplash.com/photo-1569529465841-dfecdab7503b?q=80&w=2070&auto=format&fit=crop"},
	{ID: 7, Name: "Energizantes", Slug: "energizantes", Emoji: "🪫", ImageURL: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=2070&auto=format&fit=crop"},
	{ID: 8, Name: "Vinos", Slug: "vinos", Emoji: "🍷", ImageURL: "https://images.unsplash.com/photo-1553361371-9b22f78e8b1d?q=80&w=1974&auto=format&fit=crop"},
	{ID: 9, Name: "Yerbas", Slug: "yerbas", Emoji: "🧉", ImageURL: "https://images.unsplash.com/photo-1573739022854-abceaeb585dc?q=80&w=1974&auto=format&fit=crop"},
	{ID: 10, Name: "Harina", Slug: "harina", Emoji: "🥖", ImageURL: "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?q=80&w=2070&auto=format&fit=crop"},
	{ID: 11, Name: "Puré de Tomate", Slug: "pure-tomate", Emoji: "🍅", ImageURL: "https://images.unsplash.com/photo-1546554137-f86b9593a222?q=80&w=2067&auto=format&fit=crop"},
	{ID: 12, Name: "Arroz", Slug: "arroz", Emoji: "🍚", ImageURL: "https://images.unsplash.com/photo-1586201375761-83865001e31c?q=80&w=2070&auto=format&fit=crop"},
	{ID: 13, Name: "Fideos", Slug: "fideos", Emoji: "🍝", ImageURL: "https://images.unsplash.com/photo-1603729362753-f8162ac6c3df?q=80&w=1974&auto=format&fit=crop"},
	{ID: 14, Name: "Panificados", Slug: "panificados", Emoji: "🍞", ImageURL: "https://images.unsplash.com/photo-1509440159596-0249088772ff?q=80&w=2072&auto=format&fit=crop"},
	{ID: 15, Name: "Galletitas", Slug: "galletitas", Emoji: "🍪", ImageURL: "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?q=80&w=1999&auto=format&fit=crop"},
	{ID: 16, Name: "Snacks y Golosinas", Slug: "snacks-golosinas", Emoji: "🥔", ImageURL: "https://images.unsplash.com/photo-1621939514649-280e2ee25f60?q=80&w=2070&auto=format&fit=crop"},
	{ID: 17, Name: "Papeles", Slug: "papeles", Emoji: "🧻", ImageURL: "https://images.unsplash.com/photo-1584556812952-905ffd0c611a?q=80&w=2070&auto=format&fit=crop"},
	{ID: 18, Name: "Limpieza y Perfumería", Slug: "limpieza-perfumeria", Emoji: "🧼", ImageURL: "https://images.unsplash.com/photo-1563453392212-326f5e854473?q=80&w=2070&auto=format&fit=crop"},
	{ID: 19, Name: "Otros", Slug: "otros", Emoji: "💥", ImageURL: "https://images.unsplash.com/photo-1604719312566-8912e9227c6a?q=80&w=2069&auto=format&fit=crop"},
	{ID: 20, Name: "Electrodomésticos", Slug: "electrodomesticos", Emoji: "🔌", ImageURL: "https://images.unsplash.com/photo-1601598851547-4302969d0614?q=80&w=1964&auto=format&fit=crop"},
}

var defaultProducts = []models.Product{

	// Cervezas
	{ID: 1, Name: "Brahma 1l (12u)", Description: "Cerveza Brahma botella de 1 litro. Caja por 12 unidades.", Price: 26500, CategorySlug: "cervezas"},
	{ID: 2, Name: "Miller 1l (12u)", Description: "Cerveza Miller botella de 1 litro. Caja por 12 unidades.", Price: 36000, CategorySlug: "cervezas"},
	{ID: 3, Name: "Palermo 1l (12u)", Description: "Cerveza Palermo botella de 1 litro. Caja por 12 unidades.", Price: 22900, CategorySlug: "cervezas"},
	{ID: 4, Name: "361 1l (6u)", Description: "Cerveza 361 botella de 1 litro. Pack por 6 unidades.", Price: 10000, CategorySlug: "cervezas"},
	{ID: 5, Name: "Brahma Lata 473cc (24u min 12u)", Description: "Cerveza Brahma lata de 473cc. Caja por 24 unidades, mínimo 12 unidades.", Price: 26900, CategorySlug: "cervezas"},
	{ID: 6, Name: "Miller laton 710cc (6u)", Description: "Cerveza Miller lata grande de 710cc. Pack por 6 unidades.", Price: 16250, CategorySlug: "cervezas"},
	{ID: 7, Name: "Heineken Laton 710cc (6u)", Description: "Cerveza Heineken lata grande de 710cc. Pack por 6 unidades.", Price: 18750, CategorySlug: "cervezas"},
	{ID: 8, Name: "Schneider Laton 710cc (24u min 12u)", Description: "Cerveza Schneider lata grande de 710cc. Caja por 24 unidades, mínimo 12 unidades.", Price: 51990, CategorySlug: "cervezas"},
	{ID: 9, Name: "Corona 710cc (12u)", Description: "Cerveza Corona botella de 710cc. Caja por 12 unidades.", Price: 34900, CategorySlug: "cervezas"},

	// Gaseosas
	{ID: 10, Name: "Coca 1lt vidrio (12u)", Description: "Coca-Cola botella de vidrio retornable de 1 litro. Caja por 12 unidades.", Price: 22600, CategorySlug: "gaseosas"},
	{ID: 11, Name: "Coca 2lt reto (9u)", Description: "Coca-Cola botella retornable de 2 litros. Pack por 9 unidades.", Price: 20500, CategorySlug: "gaseosas"},
	{ID: 12, Name: "Coca 2,5l desc (6u)", Description: "Coca-Cola botella descartable de 2,5 litros. Pack por 6 unidades.", Price: 17000, CategorySlug: "gaseosas"},
	{ID: 13, Name: "Sprite 2,25l desc (8u)", Description: "Sprite botella descartable de 2,25 litros. Pack por 8 unidades.", Price: 22600, CategorySlug: "gaseosas"},
	{ID: 14, Name: "Pepsi 2l (8u)", Description: "Pepsi botella de 2 litros. Pack por 8 unidades.", Price: 14500, CategorySlug: "gaseosas"},
	{ID: 15, Name: "7up 2l (8u)", Description: "7up botella de 2 litros. Pack por 8 unidades.", Price: 14500, CategorySlug: "gaseosas"},
	{ID: 16, Name: "7up desc 2,25u (8u)", Description: "7up botella descartable de 2,25 litros. Pack por 8 unidades.", Price: 15500, CategorySlug: "gaseosas"},
	{ID: 17, Name: "Manaos 2,25lt (6u)", Description: "Manaos botella de 2,25 litros. Sabores: cola, naranja, lima, pomelo, tónica, manzana. Pack por 6 unidades.", Price: 6290, CategorySlug: "gaseosas"},

	// Saborizadas Y Jugos
	{ID: 18, Name: "Placer Sab 1,5lt (6u)", Description: "Agua saborizada Placer de 1,5 litros. Sabores: ananá, pera, pomelo. Pack por 6 unidades.", Price: 4900, CategorySlug: "saborizadas-jugos"},
	{ID: 19, Name: "Placer Sab 500ml (12u)", Description: "Agua saborizada Placer de 500ml. Sabores: pera, ananá, pomelo. Pack por 12 unidades.", Price: 4899, CategorySlug: "saborizadas-jugos"},
	{ID: 20, Name: "Baggio Jugo 200ml (18u)", Description: "Jugo Baggio de 200ml sabor multifruta. Pack por 18 unidades.", Price: 5990, CategorySlug: "saborizadas-jugos"},
	{ID: 21, Name: "Baggio Jugo 1l (8u)", Description: "Jugo Baggio de 1 litro sabor multifruta. Pack por 8 unidades.", Price: 10000, CategorySlug: "saborizadas-jugos"},
	{ID: 22, Name: "Rinde Dos (10u)", Description: "Jugo concentrado Rinde Dos. Pack por 10 unidades.", Price: 359, CategorySlug: "saborizadas-jugos"},
	{ID: 23, Name: "Clight (20u)", Description: "Jugo en polvo Clight. Pack por 20 unidades.", Price: 220, CategorySlug: "saborizadas-jugos"},

	// Aguas Y Sodas
	{ID: 24, Name: "Soda Manaos 2l (6u)", Description: "Soda Manaos botella de 2 litros. Pack por 6 unidades.", Price: 6790, CategorySlug: "aguas-sodas"},
	{ID: 25, Name: "Agua Bidón 10l (min 5u)", Description: "Bidón de agua de 10 litros. Mínimo 5 unidades.", Price: 1690, CategorySlug: "aguas-sodas"},
	{ID: 26, Name: "Agua Villamanaos 2l (6u)", Description: "Agua Villamanaos botella de 2 litros. Pack por 6 unidades.", Price: 3900, CategorySlug: "aguas-sodas"},
	{ID: 27, Name: "Agua Villamanaos 600ml (12u)", Description: "Agua Villamanaos botella de 600ml. Pack por 12 unidades.", Price: 3900, CategorySlug: "aguas-sodas"},

	// Aperitivos
	{ID: 28, Name: "Ananá Fizz Fiesta 1l (6u)", Description: "Aperitivo Ananá Fizz Fiesta botella de 1 litro. Pack por 6 unidades.", Price: 4000, CategorySlug: "aperitivos"},
	{ID: 29, Name: "Clerico Fizz Fiesta 1l (6u)", Description: "Aperitivo Clerico Fizz Fiesta botella de 1 litro. Pack por 6 unidades.", Price: 4000, CategorySlug: "aperitivos"},
	{ID: 30, Name: "Sidra Real 750cc (6u)", Description: "Sidra Real botella de 750cc. Pack por 6 unidades.", Price: 10490, CategorySlug: "aperitivos"},
	{ID: 31, Name: "Fernando Forte 1l (6u)", Description: "Aperitivo Fernando Forte botella de 1 litro. Pack por 6 unidades.", Price: 4800, CategorySlug: "aperitivos"},

	// Espumantes Y Whisky
	{ID: 32, Name: "Petacas Borsa (20u min 10u)", Description: "Petacas de whisky Borsa. Pack por 20 unidades, mínimo 10 unidades.", Price: 990, CategorySlug: "espumantes-whisky"},
	{ID: 33, Name: "Licor Cusenier 700ml (6u)", Description: "Licor Cusenier botella de 700ml. Sabores: chocolate, café al cognac. Pack por 6 unidades.", Price: 4000, CategorySlug: "espumantes-whisky"},

	// Energizantes
	{ID: 34, Name: "RedBull 450ml (24u min12u)", Description: "Energizante RedBull lata de 450ml sabor sandía. Pack por 24 unidades, mínimo 12 unidades.", Price: 990, CategorySlug: "energizantes"},
	{ID: 35, Name: "Speed 473ml (12u min 6u)", Description: "Energizante Speed lata de 473ml. Pack por 12 unidades, mínimo 6 unidades.", Price: 1750, CategorySlug: "energizantes"},
	{ID: 36, Name: "Speed Zero 473ml (12u min 6u)", Description: "Energizante Speed Zero lata de 473ml. Pack por 12 unidades, mínimo 6 unidades.", Price: 1750, CategorySlug: "energizantes"},
	{ID: 37, Name: "Speed 250ml (24u min 12u)", Description: "Energizante Speed lata de 250ml. Pack por 24 unidades, mínimo 12 unidades.", Price: 1089, CategorySlug: "energizantes"},
	{ID: 38, Name: "Monster 500cc (6u)", Description: "Energizante Monster lata de 500cc. Pack por 6 unidades.", Price: 10500, CategorySlug: "energizantes"},

	// Vinos
	{ID: 39, Name: "Viñas de Balbo 1,25l (6u)", Description: "Vino Viñas de Balbo botella de 1,25 litros. Pack por 6 unidades.", Price: 13500, CategorySlug: "vinos"},
	{ID: 40, Name: "Viñas de Alvear 1,25l (6u)", Description: "Vino Viñas de Alvear botella de 1,25 litros. Pack por 6 unidades.", Price: 13500, CategorySlug: "vinos"},
	{ID: 41, Name: "Termidor Tinto 1l (12u)", Description: "Vino Termidor Tinto botella de 1 litro. Pack por 12 unidades.", Price: 19000, CategorySlug: "vinos"},
	{ID: 42, Name: "Pico Oro Bco Dulce 1l (12u)", Description: "Vino Pico Oro Blanco Dulce botella de 1 litro. Pack por 12 unidades.", Price: 16000, CategorySlug: "vinos"},
	{ID: 43, Name: "Uvita Tinto 1l (12u)", Description: "Vino Uvita Tinto botella de 1 litro. Pack por 12 unidades.", Price: 16500, CategorySlug: "vinos"},

	// Yerbas
	{ID: 44, Name: "Marolio 250gr (10u)", Description: "Yerba mate Marolio paquete de 250 gramos. Pack por 10 unidades.", Price: 650, CategorySlug: "yerbas"},

	// Harina
	{ID: 45, Name: "Harina Doña Luisa 000 1k (10u)", Description: "Harina Doña Luisa 000 paquete de 1 kilo. Pack por 10 unidades.", Price: 560, CategorySlug: "harina"},

	// Pure Tomate
	{ID: 46, Name: "Huerta Pure Tomate 530gr (12u)", Description: "Puré de tomate Huerta envase de 530 gramos. Pack por 12 unidades.", Price: 649, CategorySlug: "pure-tomate"},
	{ID: 47, Name: "Marolio Pure Tomate 530gr (12u)", Description: "Puré de tomate Marolio envase de 530 gramos. Pack por 12 unidades.", Price: 599, CategorySlug: "pure-tomate"},
	{ID: 48, Name: "Molto Pure Tomate 530gr (12u)", Description: "Puré de tomate Molto envase de 530 gramos. Pack por 12 unidades.", Price: 650, CategorySlug: "pure-tomate"},
	{ID: 49, Name: "Abeto Pure Tomate 950ml (8u)", Description: "Puré de tomate Abeto envase de 950ml. Pack por 8 unidades.", Price: 1250, CategorySlug: "pure-tomate"},
	{ID: 50, Name: "Big C Pure Tomate 200ml (18u)", Description: "Puré de tomate Big C envase de 200ml. Pack por 18 unidades.", Price: 299, CategorySlug: "pure-tomate"},
	{ID: 51, Name: "Marolio Pulpa Tomate 530gr (12u)", Description: "Pulpa de tomate Marolio envase de 530 gramos. Pack por 12 unidades.", Price: 469, CategorySlug: "pure-tomate"},
	{ID: 52, Name: "Mora Tomate Lata 400gr (12u)", Description: "Tomate Mora lata de 400 gramos. Pack por 12 unidades.", Price: 650, CategorySlug: "pure-tomate"},

	// Arroz
	{ID: 53, Name: "Arroz Carogran 1k (10u)", Description: "Arroz Carogran paquete de 1 kilo. Pack por 10 unidades.", Price: 1050, CategorySlug: "arroz"},
	{ID: 54, Name: "Arroz Ala 500g (10u)", Description: "Arroz Ala paquete de 500 gramos. Pack por 10 unidades.", Price: 659, CategorySlug: "arroz"},

	// Fideos
	{ID: 55, Name: "Santa Isabel (12u)", Description: "Fideos Santa Isabel. Variedades: tirabuzón, codito, mostachol. Pack por 12 unidades.", Price: 559, CategorySlug: "fideos"},
	{ID: 56, Name: "Lucchetti (15u)", Description: "Fideos Lucchetti. Variedades: mostachol, codito, rigatti. Pack por 15 unidades.", Price: 950, CategorySlug: "fideos"},
	{ID: 57, Name: "Marolio (12u)", Description: "Fideos Marolio. Variedades: codito, celentano. Pack por 12 unidades.", Price: 690, CategorySlug: "fideos"},

	// Panificados
	{ID: 58, Name: "Pan Lacteado Familiar (min 3u)", Description: "Pan lacteado familiar El Remanso. Mínimo 3 unidades.", Price: 1290, CategorySlug: "panificados"},
	{ID: 59, Name: "Pan Salvado Familiar (min 3u)", Description: "Pan de salvado familiar El Remanso. Mínimo 3 unidades.", Price: 1290, CategorySlug: "panificados"},
	{ID: 60, Name: "Pan Mix Semillas 400gr (x unid)", Description: "Pan mix de semillas El Remanso de 400 gramos. Precio por unidad.", Price: 1290, CategorySlug: "panificados"},
	{ID: 61, Name: "Pan Hamburguesas x4 (min 3u)", Description: "Pan para hamburguesas El Remanso x4 unidades. Mínimo 3 paquetes.", Price: 890, CategorySlug: "panificados"},
	{ID: 62, Name: "Pan Panchos x6 (min 3u)", Description: "Pan para panchos El Remanso x6 unidades. Mínimo 3 paquetes.", Price: 890, CategorySlug: "panificados"},

	// Galletitas
	{ID: 63, Name: "Don Satur grasa (30u)", Description: "Galletitas Don Satur de grasa. Pack por 30 unidades.", Price: 679, CategorySlug: "galletitas"},
	{ID: 64, Name: "Pitusas (30u)", Description: "Galletitas Pitusas. Pack por 30 unidades.", Price: 699, CategorySlug: "galletitas"},
	{ID: 65, Name: "Pitusas surtidas (30u)", Description: "Galletitas Pitusas surtidas. Sabores: chocolate, mousse. Pack por 30 unidades.", Price: 730, CategorySlug: "galletitas"},
	{ID: 66, Name: "Parnor (30u)", Description: "Galletitas Parnor. Pack por 30 unidades.", Price: 639, CategorySlug: "galletitas"},
	{ID: 67, Name: "Parnor surtidas (30u)", Description: "Galletitas Parnor surtidas. Variedades: minichips, marmoladas, morochitas. Pack por 30 unidades.", Price: 699, CategorySlug: "galletitas"},

	// Snacks Y Golosinas
	{ID: 68, Name: "Lays 17gr (min 10u)", Description: "Papas fritas Lays de 17 gramos. Mínimo 10 unidades.", Price: 590, CategorySlug: "snacks-golosinas"},
	{ID: 69, Name: "Doritos 77gr (min 10u)", Description: "Doritos de 77 gramos. Mínimo 10 unidades.", Price: 1799, CategorySlug: "snacks-golosinas"},
	{ID: 70, Name: "Rueditas 40gr (min 10u)", Description: "Snack Rueditas de 40 gramos. Mínimo 10 unidades.", Price: 990, CategorySlug: "snacks-golosinas"},
	{ID: 71, Name: "Rueditas 120gr (min 10u)", Description: "Snack Rueditas de 120 gramos. Mínimo 10 unidades.", Price: 2200, CategorySlug: "snacks-golosinas"},
	{ID: 72, Name: "Ramitas Pep 84gr (min 10u)", Description: "Snack Ramitas Pehuamar de 84 gramos. Mínimo 10 unidades.", Price: 1200, CategorySlug: "snacks-golosinas"},
	{ID: 73, Name: "Palitos Pehuamar 165gr (min 10u)", Description: "Palitos Pehuamar de 165 gramos. Mínimo 10 unidades.", Price: 1800, CategorySlug: "snacks-golosinas"},
	{ID: 74, Name: "Papas Clasicas Nikitos 65gr (min 10u)", Description: "Papas fritas clásicas Nikitos de 65 gramos. Mínimo 10 unidades.", Price: 750, CategorySlug: "snacks-golosinas"},
	{ID: 75, Name: "Papas Cheddar Nikitos 65gr (min 10u)", Description: "Papas fritas sabor cheddar Nikitos de 65 gramos. Mínimo 10 unidades.", Price: 865, CategorySlug: "snacks-golosinas"},
	{ID: 76, Name: "Papas Jamon Serrano Nikitos 65gr (min 10u)", Description: "Papas fritas sabor jamón serrano Nikitos de 65 gramos. Mínimo 10 unidades.", Price: 865, CategorySlug: "snacks-golosinas"},
	{ID: 77, Name: "Puflitos Nikitos 80gr (min 10u)", Description: "Puflitos Nikitos de 80 gramos. Mínimo 10 unidades.", Price: 500, CategorySlug: "snacks-golosinas"},
	{ID: 78, Name: "Pizzitos Nikitos 80gr (min 10u)", Description: "Pizzitos Nikitos de 80 gramos. Mínimo 10 unidades.", Price: 500, CategorySlug: "snacks-golosinas"},
	{ID: 79, Name: "Chizzitos Nikitos 80gr (min 10u)", Description: "Chizzitos Nikitos de 80 gramos. Mínimo 10 unidades.", Price: 500, CategorySlug: "snacks-golosinas"},
	{ID: 80, Name: "Tutucas Nikitos 80gr (min 10u)", Description: "Tutucas Nikitos de 80 gramos. Mínimo 10 unidades.", Price: 540, CategorySlug: "snacks-golosinas"},
	{ID: 81, Name: "Juguito Nikitos p/ Congelar (20u)", Description: "Juguito Nikitos para congelar. Pack por 20 unidades.", Price: 1860, CategorySlug: "snacks-golosinas"},
	{ID: 82, Name: "Juguito Nikitos p/ Congelar (60u)", Description: "Juguito Nikitos para congelar. Pack por 60 unidades.", Price: 1760, CategorySlug: "snacks-golosinas"},
	{ID: 83, Name: "Krukers 4H 120gr (min 20u)", Description: "Galletitas Krukers 4H de 120 gramos. Sabores: queso, clásicas, jamón, pizza. Mínimo 20 unidades.", Price: 450, CategorySlug: "snacks-golosinas"},

	// Papeles
	{ID: 84, Name: "Papel Higiénico Unitario 30m (30u)", Description: "Papel higiénico unitario de 30 metros. Pack por 30 unidades.", Price: 119, CategorySlug: "papeles"},
	{ID: 85, Name: "Rollo Cocina Duplex x3 (10u)", Description: "Rollo de cocina dúplex x3 unidades. Pack por 10 unidades.", Price: 990, CategorySlug: "papeles"},

	// Limpieza Y Perfumeria
	{ID: 86, Name: "Aktiol Crema Repelente 200gr (min 3u)", Description: "Crema repelente Aktiol de 200 gramos. Mínimo 3 unidades.", Price: 4500, CategorySlug: "limpieza-perfumeria"},
	{ID: 87, Name: "Detergente Val 750ml (12u)", Description: "Detergente Val de 750ml. Fragancias: marina, limón, aloe vera, glicerina. Pack por 12 unidades.", Price: 799, CategorySlug: "limpieza-perfumeria"},
	{ID: 88, Name: "Lavandina Val 2l (8u)", Description: "Lavandina Val de 2 litros. Pack por 8 unidades.", Price: 890, CategorySlug: "limpieza-perfumeria"},
	{ID: 89, Name: "Limpiador Piso Val 900ml (12u)", Description: "Limpiador de pisos Val de 900ml. Fragancias: cherry, lavanda, pino. Pack por 12 unidades.", Price: 550, CategorySlug: "limpieza-perfumeria"},
	{ID: 90, Name: "Bolsas Consorcio 80x110 (20u)", Description: "Bolsas de consorcio 80x110. Pack por 20 unidades.", Price: 200, CategorySlug: "limpieza-perfumeria"},
	{ID: 91, Name: "Bolsas Consorcio 80x110 (100u)", Description: "Bolsas de consorcio 80x110. Pack por 100 unidades.", Price: 180, CategorySlug: "limpieza-perfumeria"},

	// Otros
	{ID: 92, Name: "Azucar 1k (10u)", Description: "Azúcar paquete de 1 kilo. Pack por 10 unidades.", Price: 740, CategorySlug: "otros"},
	{ID: 93, Name: "Leche Serenisima 1l (min 10u)", Description: "Leche La Serenísima de 1 litro. Mínimo 10 unidades.", Price: 1400, CategorySlug: "otros"},
	{ID: 94, Name: "Dulce Leche Serenisima Clasico 400gr (12u)", Description: "Dulce de leche La Serenísima Clásico de 400 gramos. Pack por 12 unidades.", Price: 2050, CategorySlug: "otros"},
	{ID: 95, Name: "Sal Fina Doña Sal 500gr (24u)", Description: "Sal fina Doña Sal de 500 gramos. Pack por 24 unidades.", Price: 399, CategorySlug: "otros"},
	{ID: 96, Name: "Mayonesa Natura 125gr (20u)", Description: "Mayonesa Natura de 125 gramos. Pack por 20 unidades.", Price: 489, CategorySlug: "otros"},
	{ID: 97, Name: "Durazno Comai Lata (12u)", Description: "Durazno Comai en lata. Pack por 12 unidades.", Price: 1290, CategorySlug: "otros"},
	{ID: 98, Name: "Mermelada HorVinDul Pote (12u)", Description: "Mermelada HorVinDul en pote. Sabores: durazno, frutilla, damasco, ciruela. Pack por 12 unidades.", Price: 750, CategorySlug: "otros"},
	{ID: 99, Name: "Carbon 5k rinde 10 (min 5u)", Description: "Carbón de 5 kilos, rinde 10. Mínimo 5 unidades.", Price: 3000, CategorySlug: "otros"},

	// Electrodomesticos
	{ID: 100, Name: "Estufa electrica 2 velas vertical", Description: "Estufa eléctrica de 2 velas vertical.", Price: 14500, CategorySlug: "electrodomesticos"},
}
