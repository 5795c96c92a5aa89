package repository

import (
	"sobanhang/internal/model"

	"github.com/shopspring/decimal"
)

// SeedData returns the demo catalog and customers written on first start or
// when stored state turns out to be unreadable.
func SeedData() *model.Snapshot {
	vnd := decimal.NewFromInt
	return &model.Snapshot{
		Products: []model.Product{
			{ID: "prod_1", Name: "Nước suối Aquafina", SKU: "AQUA500", Barcode: "8934588022222", CostPrice: vnd(3000), SalePrice: vnd(5000), Unit: "Chai", Stock: 100, ImageURL: "https://picsum.photos/seed/aqua/200"},
			{ID: "prod_2", Name: "Bánh mì Sandwich", SKU: "BMSW", Barcode: "8936015693005", CostPrice: vnd(15000), SalePrice: vnd(22000), Unit: "Gói", Stock: 50, ImageURL: "https://picsum.photos/seed/banhmi/200"},
			{ID: "prod_3", Name: "Sữa tươi Vinamilk", SKU: "STVNM1L", Barcode: "8934673132014", CostPrice: vnd(28000), SalePrice: vnd(35000), Unit: "Hộp", Stock: 80, ImageURL: "https://picsum.photos/seed/sua/200"},
			{ID: "prod_4", Name: "Mì gói Hảo Hảo", SKU: "MHH", Barcode: "8934563103009", CostPrice: vnd(3000), SalePrice: vnd(4500), Unit: "Gói", Stock: 200, ImageURL: "https://picsum.photos/seed/migoi/200"},
			{ID: "prod_5", Name: "Bia Tiger Crystal", SKU: "TIGCRYS", Barcode: "8934602113010", CostPrice: vnd(15000), SalePrice: vnd(18000), Unit: "Lon", Stock: 120, ImageURL: "https://picsum.photos/seed/bia/200"},
		},
		Customers: []model.Customer{
			{ID: "cust_1", Name: "Anh Minh", Phone: "0909123456", Address: "123 Đường ABC, Q1, TPHCM", Debt: decimal.Zero},
			{ID: "cust_2", Name: "Chị Lan", Phone: "0987654321", Address: "456 Đường XYZ, Q3, TPHCM", Debt: vnd(250000)},
			{ID: "cust_3", Name: "Cô Ba", Phone: "0912345678", Address: "789 Đường LMN, Q. Tân Bình, TPHCM", Debt: decimal.Zero},
		},
		Sales: []model.Sale{},
	}
}
