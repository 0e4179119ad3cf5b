package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Minimal shape to check a cached record parses
type recordData struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted pokedex data...")

	iter := client.Scan(ctx, 0, "pokedex:id:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var rec recordData
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if rec.ID <= 0 || rec.Name == "" {
			fmt.Printf("✗ Incomplete record in %s: id=%d name=%q\n", key, rec.ID, rec.Name)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Name index entries must point at an existing record key
	index, err := client.HGetAll(ctx, "pokedex:names").Result()
	if err != nil {
		log.Fatal("Error reading name index:", err)
	}

	var danglingNames []string
	for name, idStr := range index {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			fmt.Printf("✗ Bad name index entry %q -> %q\n", name, idStr)
			danglingNames = append(danglingNames, name)
			continue
		}
		exists, err := client.Exists(ctx, "pokedex:id:"+strconv.Itoa(id)).Result()
		if err != nil {
			fmt.Printf("Error checking %q: %v\n", name, err)
			continue
		}
		if exists == 0 {
			fmt.Printf("✗ Dangling name index entry %q -> #%d\n", name, id)
			danglingNames = append(danglingNames, name)
		}
	}

	fmt.Printf("\nChecked %d record keys and %d index entries; found %d corrupted records, %d dangling names\n",
		checkedCount, len(index), len(corruptedKeys), len(danglingNames))

	if len(corruptedKeys) == 0 && len(danglingNames) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for _, name := range danglingNames {
		if err := client.HDel(ctx, "pokedex:names", name).Err(); err != nil {
			fmt.Printf("Failed to delete index entry %q: %v\n", name, err)
		} else {
			fmt.Printf("Deleted index entry %q\n", name)
		}
	}
	fmt.Println("\nCleanup complete!")
}
