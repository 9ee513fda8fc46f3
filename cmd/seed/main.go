package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/config"
	"github.com/careshift-dev/roster-manager/backend/internal/repository"
	"github.com/careshift-dev/roster-manager/backend/internal/seed"
	"github.com/careshift-dev/roster-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var ownerID int64
	var year int
	var month int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 插入默认业务类型, 3: 插入演示职员, 4: 生成演示排班)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&ownerID, "owner-id", 0, "数据归属的用户 ID")
	flag.IntVar(&year, "year", 0, "演示排班的年份")
	flag.IntVar(&month, "month", 0, "演示排班的月份 (1-12)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池（仅 postgres 后端需要）
	var dbpool *sql.DB
	if cfg.Storage.Driver == "postgres" {
		dbpool, err = sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			logger.Error("无法创建数据库连接池", "error", err)
			return
		}
		defer dbpool.Close()

		dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		defer cancel()

		// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
		if err := dbpool.PingContext(ctx); err != nil {
			logger.Error("无法连接到数据库", "error", err)
			return
		}
	}

	// 创建 repository
	repo, err := repository.NewRepository(cfg, dbpool)
	if err != nil {
		logger.Error("无法创建 repository", "error", err)
		return
	}

	// 除插入随机用户外，其余操作都需要指定数据归属的用户
	if op >= 2 && ownerID <= 0 {
		slog.Error("请通过 -owner-id 指定数据归属的用户 ID")
		return
	}

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
			if err != nil {
				slog.Error("无法生成随机用户", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("无法插入用户", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("插入用户成功", slog.Int("count", cnt))
	case 2:
		cnt := seed.SeedTaskTypes(repo, ownerID)
		slog.Info("插入默认业务类型成功", slog.Int("count", cnt))
	case 3:
		if n <= 0 {
			slog.Error("请输入合法的职员数量")
			return
		}

		cnt := seed.SeedStaff(repo, ownerID, n)
		slog.Info("插入演示职员成功", slog.Int("count", cnt))
	case 4:
		if year <= 0 || month < 1 || month > 12 {
			slog.Error("请通过 -year 和 -month 指定合法的年月")
			return
		}

		seed.SeedDemoMonth(repo, ownerID, year, time.Month(month))
	default:
		slog.Error("指定的操作非法")
	}
}
