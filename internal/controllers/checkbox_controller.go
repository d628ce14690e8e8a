package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"upright/internal/store"
)

type CheckboxController struct {
	Store store.CheckboxStore
}

// GetState returns the persisted checkbox mapping.
func (cc *CheckboxController) GetState(c *gin.Context) {
	state, err := cc.Store.Load()
	if err != nil {
		log.Printf("failed to read checkbox state: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(http.StatusOK, state)
}

type checkboxUpdate struct {
	SKU     string `json:"sku"`
	Checked bool   `json:"checked"`
}

// UpdateState flips one SKU's toggle. Read-modify-write without a lock:
// concurrent updates are last-write-wins.
func (cc *CheckboxController) UpdateState(c *gin.Context) {
	var req checkboxUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	state, err := cc.Store.Load()
	if err != nil {
		log.Printf("failed to read checkbox state: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	state[req.SKU] = req.Checked

	if err := cc.Store.Save(state); err != nil {
		log.Printf("failed to write checkbox state: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
