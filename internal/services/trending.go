package services

import (
	"log"
	"sync"
	"time"

	"whisperwall/internal/db"
	"whisperwall/internal/models"
)

// TrendingService 在后台统计活跃帖子的热门标签
type TrendingService struct {
	signal  chan struct{} // 刷新信号
	pending bool
	mu      sync.Mutex
	tags    []TagCount
}

var (
	trendingService *TrendingService
	once            sync.Once
)

// GetTrendingService 获取单例热门标签服务
func GetTrendingService() *TrendingService {
	once.Do(func() {
		trendingService = &TrendingService{
			signal: make(chan struct{}, 1),
		}
		// 启动后台 worker
		go trendingService.worker()
	})
	return trendingService
}

// ScheduleRefresh 请求一次刷新（异步）
// 使用去重机制避免短时间内的重复统计
func (s *TrendingService) ScheduleRefresh() {
	s.mu.Lock()
	if s.pending {
		// 已有待处理的刷新，跳过
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
		// 信号通道已满，worker 马上会刷新，撤销 pending 标记
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}
}

// Top 返回当前统计结果的前 n 个标签
func (s *TrendingService) Top(n int) []TagCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.tags) {
		n = len(s.tags)
	}
	top := make([]TagCount, n)
	copy(top, s.tags[:n])
	return top
}

// worker 响应刷新信号，并定时兜底刷新一次
func (s *TrendingService) worker() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.signal:
			s.refresh()
		case <-ticker.C:
			s.refresh()
		}
	}
}

// refresh 重新统计所有活跃（未过期）帖子的标签
func (s *TrendingService) refresh() {
	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()

	cutoff := time.Now().Add(-ExpirationWindow)
	var posts []models.Post
	if err := db.DB.Select("hashtags").Where("timestamp > ?", cutoff).Find(&posts).Error; err != nil {
		log.Printf("热门标签统计失败: %v", err)
		return
	}

	tags := CountHashtags(posts)

	s.mu.Lock()
	s.tags = tags
	s.mu.Unlock()
}
