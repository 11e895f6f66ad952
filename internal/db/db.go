package db

import (
	"log"
	"os"
	"time"

	"whisperwall/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set; refusing to start without storage credentials")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.Post{},
		&models.Comment{},
		&models.Note{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed demo confessions
	seedDemo()
}

// seedDemo 首次启动时填充演示数据，方便前端联调
func seedDemo() {
	var count int64
	DB.Model(&models.Post{}).Count(&count)
	if count > 0 {
		log.Println("Posts already present, skipping demo seed")
		return
	}

	now := time.Now()
	posts := []models.Post{
		{
			ID:           "1",
			Nickname:     "MidnightDreamer",
			Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=user1",
			Content:      "Sometimes I feel like I'm living two lives - the one everyone sees and the one only I know about. #confession #innerworld #thoughts",
			Hashtags:     []string{"#confession", "#innerworld", "#thoughts"},
			Department:   "computer-science",
			Year:         "3rd",
			Timestamp:    now.Add(-2 * time.Hour),
			CommentCount: 2,
			Reactions:    map[string]int{"❤️": 5, "🔥": 2},
		},
		{
			ID:           "2",
			Nickname:     "SilentObserver",
			Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=user2",
			Content:      "I've been scared to tell anyone, but I'm happier alone than in crowds. Is that weird? #introvert #truth #authentic",
			Hashtags:     []string{"#introvert", "#truth", "#authentic"},
			Department:   "information-technology",
			Year:         "2nd",
			Timestamp:    now.Add(-5 * time.Hour),
			CommentCount: 1,
			Reactions:    map[string]int{"😮": 1},
		},
	}

	comments := []models.Comment{
		{
			ID:        "c1",
			PostID:    "1",
			Nickname:  "NightWatcher",
			Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=commenter1",
			Content:   "I feel this so much. You're not alone! 💜",
			Timestamp: now.Add(-1 * time.Hour),
		},
		{
			ID:        "c2",
			PostID:    "1",
			Nickname:  "QuietSoul",
			Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=commenter2",
			Content:   "This resonates deeply. Thank you for sharing.",
			Timestamp: now.Add(-30 * time.Minute),
		},
		{
			ID:        "c3",
			PostID:    "2",
			Nickname:  "AloneButNotLonely",
			Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=commenter3",
			Content:   "Not weird at all! Solitude is underrated.",
			Timestamp: now.Add(-2 * time.Hour),
		},
	}

	for _, post := range posts {
		if err := DB.Create(&post).Error; err != nil {
			log.Printf("Failed to seed post %s: %v", post.ID, err)
		}
	}
	for _, comment := range comments {
		if err := DB.Create(&comment).Error; err != nil {
			log.Printf("Failed to seed comment %s: %v", comment.ID, err)
		}
	}
	log.Println("Demo confessions seeded")
}
