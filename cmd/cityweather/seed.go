package main

import (
	"log"

	"cityweather/internal/store"
)

// seedBackbone registers the default cities and the motorway-style route
// network connecting them.
func seedBackbone(st *store.WeatherStore) {
	log.Println("seeding city database")

	st.Register("Topi", 34.07, 72.63)
	st.Register("Islamabad", 33.68, 73.04)
	st.Register("Lahore", 31.55, 74.34)
	st.Register("Karachi", 24.86, 67.01)
	st.Register("Peshawar", 34.01, 71.56)
	st.Register("Quetta", 30.18, 67.00)
	st.Register("Multan", 30.20, 71.47)
	st.Register("Faisalabad", 31.42, 73.09)
	st.Register("Rawalpindi", 33.60, 73.04)
	st.Register("Hyderabad", 25.39, 68.35)
	st.Register("Sialkot", 32.49, 74.52)
	st.Register("Abbottabad", 34.16, 73.22)
	st.Register("Murree", 33.90, 73.39)

	// North network
	st.AddRoute("Peshawar", "Topi")
	st.AddRoute("Peshawar", "Islamabad")
	st.AddRoute("Topi", "Islamabad")
	st.AddRoute("Topi", "Abbottabad")
	st.AddRoute("Abbottabad", "Murree")
	st.AddRoute("Abbottabad", "Islamabad")
	st.AddRoute("Murree", "Islamabad")
	st.AddRoute("Islamabad", "Rawalpindi")
	st.AddRoute("Peshawar", "Rawalpindi")

	// Central network (Punjab)
	st.AddRoute("Islamabad", "Lahore")
	st.AddRoute("Islamabad", "Faisalabad")
	st.AddRoute("Islamabad", "Sialkot")
	st.AddRoute("Rawalpindi", "Lahore")
	st.AddRoute("Lahore", "Sialkot")
	st.AddRoute("Lahore", "Faisalabad")
	st.AddRoute("Lahore", "Multan")
	st.AddRoute("Faisalabad", "Multan")

	// South network (Sindh & Balochistan)
	st.AddRoute("Multan", "Hyderabad")
	st.AddRoute("Multan", "Karachi")
	st.AddRoute("Hyderabad", "Karachi")

	// Western links (Quetta)
	st.AddRoute("Quetta", "Karachi")
	st.AddRoute("Quetta", "Multan")
	st.AddRoute("Quetta", "Hyderabad")
	st.AddRoute("Quetta", "Peshawar")
}
