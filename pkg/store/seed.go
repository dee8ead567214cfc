package store

import "github.com/getbankd/bankd/pkg/account"

// Seed is the dataset used to populate an empty KV on first open.
type Seed struct {
	Accounts []account.Account
	Users    []account.User
}

// DefaultSeed returns the built-in demo dataset: a handful of accounts in
// the demographic shape the UI expects and one user able to log in
// (demo / demo123).
func DefaultSeed() *Seed {
	return &Seed{
		Accounts: []account.Account{
			{
				ID:            "0c7a9cf4-62a3-4f59-8f5c-9c2a19033aa1",
				AccountNumber: "1001",
				Balance:       39225,
				Age:           32,
				FirstName:     "Amber",
				LastName:      "Duke",
				Gender:        "F",
				Address:       "880 Holmes Lane",
				Employer:      "Pyrami",
				Email:         "amberduke@pyrami.com",
				City:          "Brogan",
				State:         "IL",
			},
			{
				ID:            "4f1c1ad8-6a29-46a7-9d16-6b8b40c2dca2",
				AccountNumber: "1002",
				Balance:       5686,
				Age:           36,
				FirstName:     "Hattie",
				LastName:      "Bond",
				Gender:        "M",
				Address:       "671 Bristol Street",
				Employer:      "Netagy",
				Email:         "hattiebond@netagy.com",
				City:          "Dante",
				State:         "TN",
			},
			{
				ID:            "9b2d5a31-7c0f-4f0f-9a34-df35c61a48a3",
				AccountNumber: "1003",
				Balance:       32838,
				Age:           28,
				FirstName:     "Nanette",
				LastName:      "Bates",
				Gender:        "F",
				Address:       "789 Madison Street",
				Employer:      "Quility",
				Email:         "nanettebates@quility.com",
				City:          "Nogal",
				State:         "VA",
			},
			{
				ID:            "53d0f6ec-8d4e-40cf-bc41-9c6f2c2e85a4",
				AccountNumber: "1004",
				Balance:       4180,
				Age:           33,
				FirstName:     "Dale",
				LastName:      "Adams",
				Gender:        "M",
				Address:       "467 Hutchinson Court",
				Employer:      "Boink",
				Email:         "daleadams@boink.com",
				City:          "Orick",
				State:         "MD",
			},
			{
				ID:            "c8e1b6a7-04dd-44cb-8a9d-2f8f4d1b7aa5",
				AccountNumber: "1005",
				Balance:       16418,
				Age:           30,
				FirstName:     "Elinor",
				LastName:      "Ratliff",
				Gender:        "M",
				Address:       "282 Kings Place",
				Employer:      "Scentric",
				Email:         "elinorratliff@scentric.com",
				City:          "Ribera",
				State:         "WA",
			},
			{
				ID:            "e7ac0b14-5fb2-4e03-bf02-74e6b0a8c3a6",
				AccountNumber: "1006",
				Balance:       27658,
				Age:           39,
				FirstName:     "Virginia",
				LastName:      "Ayala",
				Gender:        "F",
				Address:       "171 Putnam Avenue",
				Employer:      "Filodyne",
				Email:         "virginiaayala@filodyne.com",
				City:          "Nicholson",
				State:         "PA",
			},
		},
		Users: []account.User{
			{
				ID:        1,
				Username:  "demo",
				Password:  "demo123",
				FirstName: "Demo",
				LastName:  "User",
			},
		},
	}
}
