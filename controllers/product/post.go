package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
)

type BottleInput struct {
	Name           string          `json:"name" binding:"required"`
	Picture        string          `json:"picture"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	Stock          int             `json:"stock"`
	Volume         float64         `json:"volume" binding:"required"`
	AlcoholPercent float64         `json:"alcohol_percent"`
	Supplier       string          `json:"supplier" binding:"required"`
}

type CrateInput struct {
	Name        string          `json:"name" binding:"required"`
	Picture     string          `json:"picture"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
	BottleID    uint            `json:"bottle_id" binding:"required"`
	BottleCount int             `json:"bottle_count" binding:"required"`
}

// POST /admin/products/bottles
func CreateBottle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BottleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Kind:           models.KindBottle,
			Name:           input.Name,
			Picture:        input.Picture,
			Price:          input.Price,
			Stock:          input.Stock,
			Volume:         input.Volume,
			AlcoholPercent: input.AlcoholPercent,
			Supplier:       input.Supplier,
		}
		if err := product.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bottle"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// POST /admin/products/crates
func CreateCrate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CrateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// The referenced product must exist and be a bottle.
		var bottle models.Product
		if err := db.First(&bottle, "id = ?", input.BottleID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced bottle does not exist"})
			return
		}
		if bottle.Kind != models.KindBottle {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced product is not a bottle"})
			return
		}

		product := models.Product{
			Kind:        models.KindCrate,
			Name:        input.Name,
			Picture:     input.Picture,
			Price:       input.Price,
			Stock:       input.Stock,
			BottleID:    &input.BottleID,
			BottleCount: input.BottleCount,
		}
		if err := product.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create crate"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
