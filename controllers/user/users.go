package userControllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.
			Preload("CartItems.Product").
			Preload("Orders").
			First(&user, userIDVal).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "phone", "user_type", "company_name", "created_at").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

var allowedPhotoExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
}

func saveUserPhoto(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return "", errors.New("unsupported image format, allowed: png, jpg, jpeg, gif")
	}
	dir := filepath.Join(uploadDir, "profiles")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("photo_%s%s", uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// PUT /user
//
// Multipart form: name, phone, user_type (individual|company), company_name
// and an optional profile photo.
func UpdateUser(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.First(&user, userIDVal).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			user.Name = v
		}
		if v := c.PostForm("phone"); v != "" {
			user.Phone = v
		}
		if v := c.PostForm("company_name"); v != "" {
			user.CompanyName = v
		}
		if v := c.PostForm("user_type"); v != "" {
			switch models.UserType(v) {
			case models.UserTypeIndividual, models.UserTypeCompany:
				user.UserType = models.UserType(v)
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_type"})
				return
			}
		}

		if file, err := c.FormFile("photo"); err == nil {
			filename, err := saveUserPhoto(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user.PhotoFilename = filename
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
