package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
)

type UpdateProductInput struct {
	Name           *string          `json:"name"`
	Picture        *string          `json:"picture"`
	Price          *decimal.Decimal `json:"price"`
	Stock          *int             `json:"stock"`
	Volume         *float64         `json:"volume"`
	AlcoholPercent *float64         `json:"alcohol_percent"`
	Supplier       *string          `json:"supplier"`
	BottleCount    *int             `json:"bottle_count"`
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Picture != nil {
			product.Picture = *input.Picture
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Volume != nil {
			product.Volume = *input.Volume
		}
		if input.AlcoholPercent != nil {
			product.AlcoholPercent = *input.AlcoholPercent
		}
		if input.Supplier != nil {
			product.Supplier = *input.Supplier
		}
		if input.BottleCount != nil {
			product.BottleCount = *input.BottleCount
		}

		if err := product.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
