package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Canteen struct {
	ID      uint32 `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func main() {
	url := "https://openmensa.org/api/v2/canteens"

	fmt.Println("Fetching Live Canteen Data from OpenMensa...")

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var canteens []Canteen
	err = json.Unmarshal(body, &canteens)
	if err != nil {
		fmt.Println("Error decoding JSON:", err)
		return
	}

	fmt.Printf("\n--- 🍽️ Canteen Catalogue (%d entries) ---\n", len(canteens))
	for i, c := range canteens {
		if i >= 10 {
			fmt.Printf("... and %d more\n", len(canteens)-10)
			break
		}
		fmt.Printf("[#%d] %s (%s)\n", c.ID, c.Name, c.City)
	}
}
