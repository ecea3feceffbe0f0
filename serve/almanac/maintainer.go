package almanac

import (
	"TianjiMeta/cmn"
	"TianjiMeta/cmn/locale"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// todayCache 内存中的今日黄历，两种语言各留一份
type todayCacheEntry struct {
	date string
	zh   CalendarDay
	en   CalendarDay
}

var todayCache atomic.Value // todayCacheEntry

// Today 返回今日黄历，优先走缓存，缓存过期则现算并回填
func Today(loc string) (CalendarDay, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return CalendarDay{}, err
	}

	now, err := nowInServiceZone()
	if err != nil {
		return CalendarDay{}, err
	}

	entry, ok := todayCache.Load().(todayCacheEntry)
	if !ok || entry.date != now.Format("2006-01-02") {
		if err := refreshTodayCache(); err != nil {
			return CalendarDay{}, err
		}
		entry = todayCache.Load().(todayCacheEntry)
	}

	if loc == locale.EN {
		return entry.en, nil
	}
	return entry.zh, nil
}

func nowInServiceZone() (time.Time, error) {
	zone, err := time.LoadLocation(timezoneName)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load location %s: %w", timezoneName, err)
	}
	return time.Now().In(zone), nil
}

// refreshTodayCache 重算今日黄历并原子替换缓存
func refreshTodayCache() error {
	now, err := nowInServiceZone()
	if err != nil {
		return err
	}

	zh, err := GetCalendarDay(now, locale.ZH)
	if err != nil {
		return err
	}
	en, err := GetCalendarDay(now, locale.EN)
	if err != nil {
		return err
	}

	todayCache.Store(todayCacheEntry{
		date: now.Format("2006-01-02"),
		zh:   zh,
		en:   en,
	})

	return nil
}

// todayRefresher 每日零点刷新今日黄历缓存
func todayRefresher(ctx context.Context) {
	for {
		duration, err := cmn.GetDurationUntilNextTargetTime(0, 0, 0, timezoneName)
		if err != nil {
			z.Error("failed to get duration until next target time", zap.Error(err))
			return
		}
		z.Info("almanac-refresher sleep until next target time", zap.Duration("duration", duration))

		timer := time.NewTimer(duration)

		select {
		case <-ctx.Done():
			z.Info("almanac-refresher stopped")
			timer.Stop()
			return
		case <-timer.C:
			// 每天 00:00 刷新一次
			err = refreshTodayCache()
			if err != nil {
				z.Error("failed to refresh today calendar cache", zap.Error(err))
				continue
			}
		}
	}
}
