package db

import "github.com/lesrhabilleurs/atelier-backend/internal/gallery"

// Cases returns the workshop's published before/after showcase.
func Cases() []gallery.Case {
	return []gallery.Case{
		{
			ID:         "1",
			Title:      "Restauration cadran vintage",
			WatchBrand: "Omega",
			WatchModel: "Constellation",
			Description: "Restauration complète d'un cadran Omega Constellation des années 60. Nettoyage délicat " +
				"des index dorés, traitement des taches d'oxydation, et remise en état des aiguilles dauphines.",
			PhotoBefore: "https://cdn.shopify.com/s/files/1/0573/8630/3539/files/IMG_7214_1024x1024.jpg?v=1666862813",
			PhotoAfter:  "https://cdn.shopify.com/s/files/1/0573/8630/3539/files/IMG_7200_1024x1024.jpg?v=1666862790",
			RepairType:  gallery.RepairRestoration,
		},
		{
			ID:         "2",
			Title:      "Révision mouvement chronographe",
			WatchBrand: "Breitling",
			WatchModel: "Navitimer",
			Description: "Révision complète du calibre Valjoux 7750. Démontage intégral, nettoyage ultrason, " +
				"remplacement des pièces d'usure, réglage sur 6 positions, test d'étanchéité.",
			PhotoBefore: "https://ae01.alicdn.com/kf/S0346cd7b439f458a975ca208faf05027Y/ETA-7750-Movements-High-Accuracy-Clone-Modified-Mechanical-Movement-Replacement-Mechanism-3-6-9-Chrono.jpg",
			PhotoAfter:  "https://i.ebayimg.com/images/g/chQAAOSwx4FmzIJ2/s-l1200.jpg",
			RepairType:  gallery.RepairFullRevision,
		},
		{
			ID:         "3",
			Title:      "Polissage boîtier acier",
			WatchBrand: "Rolex",
			WatchModel: "Submariner",
			Description: "Polissage professionnel d'un boîtier Submariner avec respect des angles d'origine. " +
				"Élimination des rayures tout en préservant les proportions du boîtier.",
			PhotoBefore: "https://www.clockmaker.com.au/rolex/polish_rolex_2.jpg",
			PhotoAfter:  "https://img.chrono24.com/images/uhren/40080099-euhsvgrx2qr6zzxlqbssepzj-ExtraLarge.jpg",
			RepairType:  gallery.RepairPolishing,
		},
		{
			ID:         "4",
			Title:      "Réparation mécanisme remontoir",
			WatchBrand: "Patek Philippe",
			WatchModel: "Calatrava",
			Description: "Remplacement de la tige de remontoir et de la couronne d'origine. Travail minutieux " +
				"pour conserver l'authenticité de cette pièce exceptionnelle.",
			PhotoBefore: "https://i.ebayimg.com/images/g/yG4AAOSwWGxmRH-p/s-l400.jpg",
			PhotoAfter:  "https://patek-res.cloudinary.com/dfsmedia/0906caea301d42b3b8bd23bd656d1711/206436-51882",
			RepairType:  gallery.RepairRepair,
		},
		{
			ID:         "5",
			Title:      "Test et remise en étanchéité",
			WatchBrand: "Tudor",
			WatchModel: "Pelagos",
			Description: "Remplacement de tous les joints, test d'étanchéité sous pression à 500m. La montre " +
				"retrouve ses performances de plongée d'origine.",
			PhotoBefore: "https://hodinkee.imgix.net/uploads/article/hero_image/689/Test.jpg?ixlib=rails-1.1.0&fm=jpg&q=55&auto=format&usm=12",
			PhotoAfter:  "https://img.chrono24.com/images/uhren/6ymss7akp9jr-lxax5iqnudg8um63o5y0pvgq-ExtraLarge.jpg",
			RepairType:  gallery.RepairWaterResistance,
		},
		{
			ID:         "6",
			Title:      "Révision complète vintage",
			WatchBrand: "Longines",
			WatchModel: "Conquest Heritage",
			Description: "Révision complète d'une Longines vintage incluant le mouvement, le polissage du boîtier " +
				"et le remplacement du verre. Pièce remise à neuf dans le respect de son histoire.",
			PhotoBefore: "https://static.wixstatic.com/media/dea6ce_a7f8090ead3d40d987854e13458c0465~mv2.jpg/v1/fit/w_500,h_500,q_90/file.jpg",
			PhotoAfter:  "https://api.ecom.longines.com/media/catalog/product/9/0/9004-9888328-bottom-gallery-4db95e.jpg?&w=2560",
			RepairType:  gallery.RepairFullRevision,
		},
	}
}
