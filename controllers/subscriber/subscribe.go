package subscriberControllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Subscribe registers a newsletter subscriber. Accepts either a JSON body or
// a plain form post, since the signup form lives in the page footer.
//
// POST /subscribe
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var email string
		if strings.HasPrefix(c.ContentType(), "application/json") {
			var input struct {
				Email string `json:"email"`
			}
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input"})
				return
			}
			email = input.Email
		} else {
			email = c.PostForm("email")
		}

		email = strings.ToLower(strings.TrimSpace(email))
		if !emailPattern.MatchString(email) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please enter a valid email"})
			return
		}

		subscriber := models.Subscriber{
			Email:        email,
			SubscribedAt: time.Now().UTC(),
			Active:       true,
		}
		if err := db.Create(&subscriber).Error; err != nil {
			// The unique index on email decides duplicates, so a concurrent
			// signup cannot slip between a check and the insert.
			var existing models.Subscriber
			if db.Where("email = ?", email).First(&existing).Error == nil {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "You are already subscribed"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to subscribe"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Thank you for subscribing"})
	}
}

// GET /admin/subscribers
func GetAllSubscribers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subscribers []models.Subscriber
		if err := db.Order("subscribed_at DESC").Find(&subscribers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
			return
		}
		c.JSON(http.StatusOK, subscribers)
	}
}

type UpdateSubscriberInput struct {
	Active *bool `json:"active" binding:"required"`
}

// PUT /admin/subscribers/:id
func UpdateSubscriber(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subscriber models.Subscriber
		if err := db.First(&subscriber, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
			return
		}

		var input UpdateSubscriberInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := db.Model(&subscriber).Update("active", *input.Active).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscriber"})
			return
		}
		c.JSON(http.StatusOK, subscriber)
	}
}
