// controllers/admin_dashboard.go - admin dashboard fetch, filter, sort
package controllers

import (
	"log"
	"net/http"
	"sync"

	"abstract-review-web/config"
	"abstract-review-web/middleware"
	"abstract-review-web/models"

	"github.com/gin-gonic/gin"
)

// AdminDashboard loads abstracts, aggregate stats and reviewers with three
// concurrent backend calls and joins on all of them before rendering. A
// failure in any one call is logged and leaves its slice empty; the rest of
// the page still renders.
func AdminDashboard(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	token := middleware.TokenFrom(c)
	ctx := c.Request.Context()

	// A plain entry (no filter state in the URL) always re-fetches, so
	// server-side changes show up on every fresh visit. Only filter, sort
	// and search navigation reuses the cached list.
	fresh := true
	for _, key := range []string{"search", "status", "response", "sort", "order"} {
		if _, ok := c.GetQuery(key); ok {
			fresh = false
			break
		}
	}

	var (
		abstracts    []models.Abstract
		stats        *models.Stats
		reviewers    []models.Reviewer
		abstractsErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		if !fresh {
			if cached, ok := dashboards.get(sess.ID); ok {
				abstracts = cached
				return
			}
		}
		list, err := config.Backend.AdminAbstracts(ctx, token)
		if err != nil {
			abstractsErr = err
			log.Printf("admin dashboard: fetch abstracts failed: %v", err)
			return
		}
		abstracts = list
		dashboards.set(sess.ID, list)
	}()

	go func() {
		defer wg.Done()
		s, err := config.Backend.AdminStats(ctx, token)
		if err != nil {
			log.Printf("admin dashboard: fetch stats failed: %v", err)
			return
		}
		stats = s
	}()

	go func() {
		defer wg.Done()
		list, err := config.Backend.Reviewers(ctx, token)
		if err != nil {
			log.Printf("admin dashboard: fetch reviewers failed: %v", err)
			return
		}
		reviewers = list
	}()

	wg.Wait()

	// Default view: pending submissions, best score first.
	filter := models.AbstractFilter{
		Search:         c.Query("search"),
		Status:         c.DefaultQuery("status", models.StatusPending),
		AuthorResponse: c.Query("response"),
	}
	if filter.Status == "all" {
		filter.Status = ""
	}
	sortKey := c.DefaultQuery("sort", models.SortByScore)
	order := c.DefaultQuery("order", "desc")

	// The randomize guard needs the pool of assignable abstracts, counted
	// over the unfiltered list.
	pending := 0
	for i := range abstracts {
		if abstracts[i].Status == models.StatusPending || abstracts[i].Status == models.StatusUnderReview {
			pending++
		}
	}

	visible := models.FilterAbstracts(abstracts, filter)
	models.SortAbstracts(visible, sortKey, order == "desc")

	var admin models.Admin
	_ = sess.DecodeProfile(&admin)

	data := pageData(c, "Admin Dashboard")
	data["Admin"] = admin
	data["Stats"] = stats
	data["Reviewers"] = reviewers
	data["Abstracts"] = visible
	data["PendingCount"] = pending
	data["Search"] = filter.Search
	data["Status"] = c.DefaultQuery("status", models.StatusPending)
	data["Response"] = filter.AuthorResponse
	data["Sort"] = sortKey
	data["Order"] = order
	data["StatusOptions"] = []string{"all", models.StatusPending, models.StatusUnderReview, models.StatusAccepted, models.StatusRejected}
	data["ResponseOptions"] = []string{models.ResponsePending, models.ResponseAccepted, models.ResponseDeclined}
	data["SortOptions"] = []string{models.SortByScore, models.SortByReviews, models.SortByDate}
	if abstractsErr != nil {
		data["FlashError"] = "Could not load abstracts. Other panels may still be current."
	}
	c.HTML(http.StatusOK, "admin_dashboard", data)
}
