package main

import "github.com/Oleh-Rudko/TrackerFood/cmd/mealtrack"

func main() {
	mealtrack.Execute()
}
