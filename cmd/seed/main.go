package main

import (
	"fmt"

	"clipstream/pkg/config"
	"clipstream/pkg/database"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		username string
		fullName string
		password string
	}{
		{"alice_clips", "Alice Anderson", "password123"},
		{"bob_clips", "Bob Brown", "password123"},
		{"charlie_clips", "Charlie Clark", "password123"},
		{"diana_clips", "Diana Davis", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &models.User{
			Username: userData.username,
			FullName: userData.fullName,
			Password: string(hashedPassword),
		}

		var existing models.User
		result := db.Where("username = ?", user.Username).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s", user.Username)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) < 2 {
		return fmt.Errorf("not enough users to seed relations")
	}

	sampleVideos := []struct {
		title       string
		description string
		duration    string
		owner       int
	}{
		{"Morning routine", "How I start my day", "04:12", 0},
		{"Cat compilation", "Cats doing cat things", "02:45", 0},
		{"City walk", "A walk through the old town", "12:30", 1},
		{"Cooking pasta", "Simple weeknight dinner", "08:05", 2},
	}

	videoIDs := make([]string, 0, len(sampleVideos))

	for _, v := range sampleVideos {
		video := &models.Video{
			Title:       v.title,
			Description: v.description,
			VideoFile:   fmt.Sprintf("https://example.com/videos/%s.mp4", v.title),
			Thumbnail:   fmt.Sprintf("https://example.com/thumbs/%s.jpg", v.title),
			Duration:    v.duration,
			OwnerID:     userIDs[v.owner%len(userIDs)],
			IsPublished: true,
		}

		var existing models.Video
		result := db.Where("title = ? AND owner_id = ?", video.Title, video.OwnerID).First(&existing)
		if result.Error == nil {
			videoIDs = append(videoIDs, existing.ID)
			continue
		}

		if err := db.Create(video).Error; err != nil {
			log.Error("Failed to create video %q: %v", video.Title, err)
			continue
		}

		log.Info("Created video: %s", video.Title)
		videoIDs = append(videoIDs, video.ID)
	}

	if len(videoIDs) > 0 {
		comment := &models.Comment{
			Content: "First!",
			VideoID: videoIDs[0],
			OwnerID: userIDs[1%len(userIDs)],
		}
		if err := db.Create(comment).Error; err != nil {
			log.Error("Failed to create comment: %v", err)
		}
	}

	for i := 1; i < len(userIDs); i++ {
		sub := &models.Subscription{
			SubscriberID: userIDs[i],
			ChannelID:    userIDs[0],
		}
		var existing models.Subscription
		result := db.Where("subscriber_id = ? AND channel_id = ?", sub.SubscriberID, sub.ChannelID).First(&existing)
		if result.Error == nil {
			continue
		}
		if err := db.Create(sub).Error; err != nil {
			log.Error("Failed to create subscription: %v", err)
		}
	}

	tweet := &models.Tweet{
		Content: "New video is up, go watch it!",
		TweetBy: userIDs[0],
	}
	if err := db.Create(tweet).Error; err != nil {
		log.Error("Failed to create tweet: %v", err)
	}

	return nil
}
