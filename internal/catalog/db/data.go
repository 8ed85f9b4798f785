package db

import "github.com/lesrhabilleurs/atelier-backend/internal/catalog"

// Listings returns the workshop's current boutique collection. Every watch
// has been revised in the atelier before being listed; prices are in CHF.
func Listings() []catalog.Listing {
	return []catalog.Listing{
		{
			ID:           "1",
			Brand:        "Omega",
			Model:        "Speedmaster Professional",
			Year:         1969,
			MovementType: catalog.MovementAutomatic,
			Condition:    catalog.ConditionGood,
			Description: "La légendaire Moonwatch, référence incontournable pour tout collectionneur. " +
				"Cette Speedmaster Professional de 1969 a été entièrement révisée dans notre atelier. " +
				"Le cadran noir mat d'origine présente une patine sublime. Ref. 145.022-68",
			Price: 8300,
			Photos: []string{
				"https://img.ricardostatic.ch/images/dc7b27e1-9bc3-4a1c-8a54-f4bfa74d92a7/t_1000x750/1969-omega-speedmaster-pre-moon-145022-68-eoa-service",
			},
			IsRare:          true,
			RevisionDetails: "Révision complète du calibre 861, remplacement des joints, polissage du boîtier, étanchéité testée à 50m.",
			WarrantyMonths:  12,
		},
		{
			ID:           "2",
			Brand:        "Rolex",
			Model:        "Datejust 36",
			Year:         2015,
			MovementType: catalog.MovementAutomatic,
			Condition:    catalog.ConditionExcellent,
			Description: "Rolex Datejust 36mm en acier et or jaune 18 carats. Cadran champagne avec index bâtons, " +
				"bracelet Jubilee d'origine. Cette montre incarne l'élégance intemporelle de la maison Rolex. Ref. 116200",
			Price: 9200,
			Photos: []string{
				"https://www.markworthingtonjewellers.co.uk/images/super/116200_silver_baton_2.jpg",
			},
			IsRare:          false,
			RevisionDetails: "Service complet Rolex, calibre 3135 révisé, étanchéité 100m vérifiée, polissage professionnel.",
			WarrantyMonths:  24,
		},
		{
			ID:           "3",
			Brand:        "Jaeger-LeCoultre",
			Model:        "Reverso Classic",
			Year:         2018,
			MovementType: catalog.MovementMechanical,
			Condition:    catalog.ConditionVeryGood,
			Description: "L'iconique Reverso avec son boîtier réversible Art Déco. Cadran argenté guilloché, " +
				"chiffres arabes appliqués. Une pièce d'exception qui traverse les décennies avec élégance.",
			Price: 6800,
			Photos: []string{
				"https://images.hbjo-online.com/webp/sites/masson/uploads/images/678a30b76aef0678a30036e55c_img4857.png",
			},
			IsRare:          false,
			RevisionDetails: "Révision complète du mouvement manuel, nettoyage ultrason du boîtier, nouveau bracelet cuir.",
			WarrantyMonths:  12,
		},
		{
			ID:           "4",
			Brand:        "Patek Philippe",
			Model:        "Calatrava 5196J",
			Year:         2012,
			MovementType: catalog.MovementMechanical,
			Condition:    catalog.ConditionExcellent,
			Description: "La quintessence de l'élégance horlogère. Cette Calatrava 5196J en or rose 18 carats " +
				"représente la perfection du style classique. Cadran blanc avec aiguilles feuille.",
			Price: 19800,
			Photos: []string{
				"https://img.chrono24.com/images/uhren/44009378-3fzcx3bt2ua2pff52loh5yku-ExtraLarge.jpg",
			},
			IsRare:          true,
			RevisionDetails: "Service complet Patek Philippe, calibre 215 PS révisé, nouveau bracelet alligator.",
			WarrantyMonths:  24,
		},
		{
			ID:           "5",
			Brand:        "Tudor",
			Model:        "Black Bay 58",
			Year:         2020,
			MovementType: catalog.MovementAutomatic,
			Condition:    catalog.ConditionExcellent,
			Description: "La Black Bay 58 revisite les codes vintage des montres de plongée Tudor des années 50. " +
				"Boîtier 39mm parfaitement proportionné, lunette rotative unidirectionnelle, étanche à 200m.",
			Price: 3800,
			Photos: []string{
				"https://img.chrono24.com/images/uhren/43351161-6q7nw1ho0nu4ga9b22nzftjr-ExtraLarge.jpg",
			},
			IsRare:          false,
			RevisionDetails: "Contrôle complet, étanchéité vérifiée, bracelet acier ajusté.",
			WarrantyMonths:  12,
		},
		{
			ID:           "6",
			Brand:        "IWC",
			Model:        "Portugieser Chronograph",
			Year:         2019,
			MovementType: catalog.MovementAutomatic,
			Condition:    catalog.ConditionVeryGood,
			Description: "Le Portugieser Chronograph 41mm combine élégance et sportivité. Cadran bleu profond, " +
				"compteurs contrastés, bracelet alligator noir.",
			Price: 7200,
			Photos: []string{
				"https://chpremier.com/cdn/shop/products/iwc-schaffhausen-portugieser-chronograph-iw371606-147884_1024x1024.jpg?v=1620868443",
			},
			IsRare:          false,
			RevisionDetails: "Service complet du calibre 69355, verre saphir vérifié, étanchéité 30m.",
			WarrantyMonths:  24,
		},
	}
}
