package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

// Discounts

func (s *Server) listDiscounts(c *gin.Context) {
	discounts, err := s.merch.ListDiscounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, discounts)
}

func (s *Server) getDiscount(c *gin.Context) {
	d, err := s.merch.GetDiscount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) createDiscount(c *gin.Context) {
	var d domain.Discount
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	created, err := s.merch.CreateDiscount(c.Request.Context(), d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateDiscount(c *gin.Context) {
	var upd interfaces.DiscountUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	d, err := s.merch.UpdateDiscount(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) deleteDiscount(c *gin.Context) {
	if err := s.merch.DeleteDiscount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listDiscountProducts(c *gin.Context) {
	items, err := s.merch.DiscountProducts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) addDiscountProduct(c *gin.Context) {
	var dp domain.DiscountProduct
	if err := c.ShouldBindJSON(&dp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	dp.DiscountID = c.Param("id")
	created, err := s.merch.AddDiscountProduct(c.Request.Context(), dp)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) removeDiscountProduct(c *gin.Context) {
	if err := s.merch.RemoveDiscountProduct(c.Request.Context(), c.Param("itemID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Slides

func (s *Server) listSlides(c *gin.Context) {
	slides, err := s.merch.ListSlides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

func (s *Server) getSlide(c *gin.Context) {
	sl, err := s.merch.GetSlide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sl)
}

func (s *Server) createSlide(c *gin.Context) {
	var sl domain.Slide
	if err := c.ShouldBindJSON(&sl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	created, err := s.merch.CreateSlide(c.Request.Context(), sl)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateSlide(c *gin.Context) {
	var upd interfaces.SlideUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sl, err := s.merch.UpdateSlide(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sl)
}

func (s *Server) deleteSlide(c *gin.Context) {
	if err := s.merch.DeleteSlide(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getSlideGallery(c *gin.Context) {
	gallery, err := s.merch.SlideGallery(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (s *Server) addSlideGalleryItem(c *gin.Context) {
	var item domain.SlideGallery
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	item.SlideID = c.Param("id")
	created, err := s.merch.AddSlideGalleryItem(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) deleteSlideGalleryItem(c *gin.Context) {
	if err := s.merch.DeleteSlideGalleryItem(c.Request.Context(), c.Param("itemID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
