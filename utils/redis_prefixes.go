package utils

import (
	"fmt"
)

const (
	redisQueueViewPrefix = "safequeue:%s:%s:queue"   // Latest grouped queue view per chain:safe
	redisPendingPrefix   = "safequeue:%s:%s:pending" // Badge counts per chain:safe
	redisSafeInfoPrefix  = "safequeue:%s:%s:info"    // Cached safe record per chain:safe
	redisWatchedSafesSet = "safequeue:watched"       // Set of chainId:address pairs being polled
)

func RedisQueueViewKey(chainID, safe string) string {
	return fmt.Sprintf(redisQueueViewPrefix, chainID, safe)
}

func RedisPendingKey(chainID, safe string) string {
	return fmt.Sprintf(redisPendingPrefix, chainID, safe)
}

func RedisSafeInfoKey(chainID, safe string) string {
	return fmt.Sprintf(redisSafeInfoPrefix, chainID, safe)
}

func RedisWatchedSafesKey() string {
	return redisWatchedSafesSet
}
