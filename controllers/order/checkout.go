package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/mailer"
	"github.com/SkriptSparrow/Catalog-AGT/models"
)

var errCartEmpty = errors.New("cart is empty")

// Checkout converts the user's entire cart into a durable order.
//
// The whole conversion runs in one transaction: order row, order number
// derived from the fresh primary key, one snapshot line per cart item, the
// accumulated total, and the cart clear. Either everything commits or nothing
// does. Email and websocket notification happen after the commit and never
// fail the request.
//
// POST /cart/checkout
func Checkout(db *gorm.DB, m *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		// An empty cart is reported before any profile problem; there is
		// nothing to fix the profile for.
		var cartCount int64
		if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if cartCount == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		if missing := user.MissingCheckoutFields(); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "incomplete profile",
				"missing": missing,
			})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var cartItems []models.CartItem
			if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
				return err
			}
			if len(cartItems) == 0 {
				return errCartEmpty
			}

			order = models.Order{
				UserID:      user.ID,
				Status:      models.OrderStatusNew,
				FullName:    user.Name,
				Phone:       user.Phone,
				Email:       user.Email,
				CompanyName: user.CompanyName,
				CreatedAt:   time.Now().UTC(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			// The primary key doubles as the order sequence, so the number
			// needs no racy max+1 read.
			order.OrderNumber = models.FormatOrderNumber(order.ID, order.CreatedAt)
			if err := tx.Model(&order).Update("order_number", order.OrderNumber).Error; err != nil {
				return err
			}

			total := decimal.Zero
			for _, item := range cartItems {
				productID := item.ProductID
				lineSum := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

				orderItem := models.OrderItem{
					OrderID:     order.ID,
					ProductID:   &productID,
					ProductName: item.Product.Name,
					Article:     item.Product.Article,
					Quantity:    item.Quantity,
					Price:       item.Product.Price,
					Sum:         lineSum,
				}
				if err := tx.Create(&orderItem).Error; err != nil {
					return err
				}
				order.Items = append(order.Items, orderItem)
				total = total.Add(lineSum)
			}

			order.TotalSum = total
			if err := tx.Model(&order).Update("total_sum", total).Error; err != nil {
				return err
			}

			return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			if errors.Is(err, errCartEmpty) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
				return
			}
			zap.L().Error("checkout transaction failed", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		// Best-effort side effects: the order is already committed, so a
		// failed notification is logged and swallowed.
		if m != nil {
			go func(o models.Order) {
				if err := m.SendOrderNotification(o); err != nil {
					zap.L().Warn("order notification email failed",
						zap.String("order_number", o.OrderNumber),
						zap.Error(err),
					)
				}
			}(order)
		}
		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order " + order.OrderNumber + " placed successfully",
			"order":   order,
		})
	}
}
