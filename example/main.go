package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	livedash "github.com/xwlin/livedash-sdk"
	"github.com/xwlin/livedash-sdk/feed"
)

func main() {
	// 1. 读取环境变量（.env 可选）
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用环境变量")
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://127.0.0.1:8300/api/v1"
	}
	backendSecret := os.Getenv("BACKEND_SECRET")
	adminSecret := os.Getenv("ADMIN_SECRET")

	// 2. Redis 可选：配了就给房间快照/列表加短 TTL 缓存
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis 连接失败，退化为直连后端: %v", err)
			rdb = nil
		}
	}

	// 3. 初始化 Dashboard Engine（单例模式，全局只需调用一次）
	engine := livedash.NewEngine(
		livedash.WithBackend(backendURL, backendSecret),
		livedash.WithAdminSecret(adminSecret),
		livedash.WithRDB(rdb),
		livedash.WithFeedConfig(feed.Config{
			// 高级筛选要不要继续实时轮询，默认关。想开打开这行：
			// PollWithAdvancedFilters: true,
		}),
		livedash.WithViewIdleTTL(5*time.Minute),
	)
	defer engine.Shutdown()

	// 4. 创建 Gin 路由
	r := gin.Default()

	// 设置 CORS（如果需要）
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Secret")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 注册 Swagger UI 和 Prometheus 指标
	livedash.RegisterSwagger(r, "/swagger/*any")
	livedash.RegisterMetrics(r, "/metrics")

	// 5. 注册看板 API
	engine.RegisterGinRoutes(r)

	// 6. 启动服务器
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8090"
	}
	log.Printf("Live Dashboard 启动在 %s", addr)
	log.Printf("Swagger UI: http://localhost%s/swagger/index.html", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("服务器启动失败:", err)
	}
}
