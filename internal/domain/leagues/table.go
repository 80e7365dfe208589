package leagues

var builtin = []Info{
	{
		ID:   NBA,
		Name: "Basketball (NBA)",
		Teams: []Team{
			{Name: "Atlanta Hawks", Abbreviation: "ATL"},
			{Name: "Boston Celtics", Abbreviation: "BOS"},
			{Name: "Brooklyn Nets", Abbreviation: "BRK"},
			{Name: "Charlotte Hornets", Abbreviation: "CHO"},
			{Name: "Chicago Bulls", Abbreviation: "CHI"},
			{Name: "Cleveland Cavaliers", Abbreviation: "CLE"},
			{Name: "Dallas Mavericks", Abbreviation: "DAL"},
			{Name: "Denver Nuggets", Abbreviation: "DEN"},
			{Name: "Detroit Pistons", Abbreviation: "DET"},
			{Name: "Golden State Warriors", Abbreviation: "GSW"},
			{Name: "Houston Rockets", Abbreviation: "HOU"},
			{Name: "Indiana Pacers", Abbreviation: "IND"},
			{Name: "Los Angeles Clippers", Abbreviation: "LAC"},
			{Name: "Los Angeles Lakers", Abbreviation: "LAL"},
			{Name: "Memphis Grizzlies", Abbreviation: "MEM"},
			{Name: "Miami Heat", Abbreviation: "MIA"},
			{Name: "Milwaukee Bucks", Abbreviation: "MIL"},
			{Name: "Minnesota Timberwolves", Abbreviation: "MIN"},
			{Name: "New Orleans Pelicans", Abbreviation: "NOP"},
			{Name: "New York Knicks", Abbreviation: "NYK"},
			{Name: "Oklahoma City Thunder", Abbreviation: "OKC"},
			{Name: "Orlando Magic", Abbreviation: "ORL"},
			{Name: "Philadelphia 76ers", Abbreviation: "PHI"},
			{Name: "Phoenix Suns", Abbreviation: "PHO"},
			{Name: "Portland Trail Blazers", Abbreviation: "POR"},
			{Name: "Sacramento Kings", Abbreviation: "SAC"},
			{Name: "San Antonio Spurs", Abbreviation: "SAS"},
			{Name: "Toronto Raptors", Abbreviation: "TOR"},
			{Name: "Utah Jazz", Abbreviation: "UTA"},
			{Name: "Washington Wizards", Abbreviation: "WAS"},
		},
	},
	{
		ID:   NFL,
		Name: "Football (NFL)",
		Teams: []Team{
			{Name: "Arizona Cardinals", Abbreviation: "ARI"},
			{Name: "Atlanta Falcons", Abbreviation: "ATL"},
			{Name: "Baltimore Ravens", Abbreviation: "BAL"},
			{Name: "Buffalo Bills", Abbreviation: "BUF"},
			{Name: "Carolina Panthers", Abbreviation: "CAR"},
			{Name: "Chicago Bears", Abbreviation: "CHI"},
			{Name: "Cincinnati Bengals", Abbreviation: "CIN"},
			{Name: "Cleveland Browns", Abbreviation: "CLE"},
			{Name: "Dallas Cowboys", Abbreviation: "DAL"},
			{Name: "Denver Broncos", Abbreviation: "DEN"},
			{Name: "Detroit Lions", Abbreviation: "DET"},
			{Name: "Green Bay Packers", Abbreviation: "GB"},
			{Name: "Houston Texans", Abbreviation: "HOU"},
			{Name: "Indianapolis Colts", Abbreviation: "IND"},
			{Name: "Jacksonville Jaguars", Abbreviation: "JAX"},
			{Name: "Kansas City Chiefs", Abbreviation: "KC"},
			{Name: "Las Vegas Raiders", Abbreviation: "LV"},
			{Name: "Los Angeles Chargers", Abbreviation: "LAC"},
			{Name: "Los Angeles Rams", Abbreviation: "LAR"},
			{Name: "Miami Dolphins", Abbreviation: "MIA"},
			{Name: "Minnesota Vikings", Abbreviation: "MIN"},
			{Name: "New England Patriots", Abbreviation: "NE"},
			{Name: "New Orleans Saints", Abbreviation: "NO"},
			{Name: "New York Giants", Abbreviation: "NYG"},
			{Name: "New York Jets", Abbreviation: "NYJ"},
			{Name: "Philadelphia Eagles", Abbreviation: "PHI"},
			{Name: "Pittsburgh Steelers", Abbreviation: "PIT"},
			{Name: "San Francisco 49ers", Abbreviation: "SF"},
			{Name: "Seattle Seahawks", Abbreviation: "SEA"},
			{Name: "Tampa Bay Buccaneers", Abbreviation: "TB"},
			{Name: "Tennessee Titans", Abbreviation: "TEN"},
			{Name: "Washington Commanders", Abbreviation: "WAS"},
		},
	},
	{
		ID:   MLB,
		Name: "Baseball (MLB)",
		Teams: []Team{
			{Name: "Arizona Diamondbacks", Abbreviation: "ARI"},
			{Name: "Atlanta Braves", Abbreviation: "ATL"},
			{Name: "Baltimore Orioles", Abbreviation: "BAL"},
			{Name: "Boston Red Sox", Abbreviation: "BOS"},
			{Name: "Chicago Cubs", Abbreviation: "CHC"},
			{Name: "Chicago White Sox", Abbreviation: "CWS"},
			{Name: "Cincinnati Reds", Abbreviation: "CIN"},
			{Name: "Cleveland Guardians", Abbreviation: "CLE"},
			{Name: "Colorado Rockies", Abbreviation: "COL"},
			{Name: "Detroit Tigers", Abbreviation: "DET"},
			{Name: "Houston Astros", Abbreviation: "HOU"},
			{Name: "Kansas City Royals", Abbreviation: "KC"},
			{Name: "Los Angeles Angels", Abbreviation: "LAA"},
			{Name: "Los Angeles Dodgers", Abbreviation: "LAD"},
			{Name: "Miami Marlins", Abbreviation: "MIA"},
			{Name: "Milwaukee Brewers", Abbreviation: "MIL"},
			{Name: "Minnesota Twins", Abbreviation: "MIN"},
			{Name: "New York Mets", Abbreviation: "NYM"},
			{Name: "New York Yankees", Abbreviation: "NYY"},
			{Name: "Oakland Athletics", Abbreviation: "OAK"},
			{Name: "Philadelphia Phillies", Abbreviation: "PHI"},
			{Name: "Pittsburgh Pirates", Abbreviation: "PIT"},
			{Name: "San Diego Padres", Abbreviation: "SD"},
			{Name: "San Francisco Giants", Abbreviation: "SF"},
			{Name: "Seattle Mariners", Abbreviation: "SEA"},
			{Name: "St. Louis Cardinals", Abbreviation: "STL"},
			{Name: "Tampa Bay Rays", Abbreviation: "TB"},
			{Name: "Texas Rangers", Abbreviation: "TEX"},
			{Name: "Toronto Blue Jays", Abbreviation: "TOR"},
			{Name: "Washington Nationals", Abbreviation: "WSH"},
		},
	},
}
