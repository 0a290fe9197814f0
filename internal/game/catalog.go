package game

import "quizboard-service/internal/domain"

// Catalog names of the four predefined boards.
const (
	CategoryArts    = "ARTS"
	CategoryCompSci = "COMP SCI"
	CategoryMusic   = "MUSIC"
	CategorySports  = "SPORTS"
)

// PredefinedBoard returns a fresh copy of one of the four baked-in boards.
// Copies are independent: flipping answered flags in one session never leaks
// into another.
func PredefinedBoard(name string) (domain.Board, error) {
	build, ok := catalog[name]
	if !ok {
		return domain.Board{}, domain.ErrUnknownCategory
	}
	return build(), nil
}

// PredefinedCategories lists the catalog in display order.
func PredefinedCategories() []string {
	return []string{CategoryArts, CategoryCompSci, CategoryMusic, CategorySports}
}

var catalog = map[string]func() domain.Board{
	CategoryArts:    artsBoard,
	CategoryCompSci: compSciBoard,
	CategoryMusic:   musicBoard,
	CategorySports:  sportsBoard,
}

func q(text string, options []string, correct, points int) domain.Question {
	return domain.Question{Text: text, Options: options, CorrectIndex: correct, PointValue: points}
}

func artsBoard() domain.Board {
	return domain.Board{
		Name: CategoryArts,
		Columns: []domain.Column{
			{Name: "Modern Art", Questions: []domain.Question{
				q("What movement did Pablo Picasso co-found?", []string{"Cubism", "Impressionism", "Futurism", "Surrealism"}, 0, 200),
				q("Who is known for the 'Campbell's Soup Cans' artwork?", []string{"Andy Warhol", "Jackson Pollock", "Mark Rothko", "Pablo Picasso"}, 0, 400),
				q("Which artist is famous for 'The Persistence of Memory'?", []string{"Salvador Dalí", "Claude Monet", "Edvard Munch", "Henri Matisse"}, 0, 600),
				q("What is the primary style of Piet Mondrian's paintings?", []string{"De Stijl", "Baroque", "Expressionism", "Pop Art"}, 0, 800),
			}},
			{Name: "Famous Painters", Questions: []domain.Question{
				q("Who painted the 'Mona Lisa'?", []string{"Leonardo da Vinci", "Michelangelo", "Van Gogh", "Rembrandt"}, 0, 200),
				q("Which artist painted the 'Starry Night'?", []string{"Vincent van Gogh", "Claude Monet", "Paul Cézanne", "Paul Gauguin"}, 0, 400),
				q("What painter is known for the 'Girl with a Pearl Earring'?", []string{"Johannes Vermeer", "Caravaggio", "Francisco Goya", "Titian"}, 0, 600),
				q("Which artist painted 'The School of Athens'?", []string{"Raphael", "Michelangelo", "Leonardo da Vinci", "Titian"}, 0, 800),
			}},
			{Name: "Art History", Questions: []domain.Question{
				q("What ancient civilization is known for the pyramids?", []string{"Egypt", "Greece", "Rome", "China"}, 0, 200),
				q("Which era is known for its dramatic use of light and shadow?", []string{"Baroque", "Renaissance", "Impressionism", "Modernism"}, 0, 400),
				q("Who was the primary architect of the Parthenon?", []string{"Phidias", "Ictinus", "Callicrates", "Vitruvius"}, 1, 600),
				q("What style of art is characterized by intricate designs and gold leaf?", []string{"Byzantine", "Gothic", "Romanesque", "Neoclassical"}, 0, 800),
			}},
			{Name: "Famous Sculptures", Questions: []domain.Question{
				q("Who sculpted 'David'?", []string{"Michelangelo", "Donatello", "Bernini", "Rodin"}, 0, 200),
				q("The 'Thinker' was sculpted by whom?", []string{"Auguste Rodin", "Henry Moore", "Gian Lorenzo Bernini", "Donatello"}, 0, 400),
				q("What civilization created the Terracotta Army?", []string{"China", "Japan", "Egypt", "India"}, 0, 600),
				q("Who sculpted the 'Pieta'?", []string{"Michelangelo", "Bernini", "Canova", "Donatello"}, 0, 800),
			}},
		},
	}
}

func compSciBoard() domain.Board {
	return domain.Board{
		Name: CategoryCompSci,
		Columns: []domain.Column{
			{Name: "Prog Languages", Questions: []domain.Question{
				q("Which language was created by Guido van Rossum?", []string{"Python", "Ruby", "Perl", "Lua"}, 0, 200),
				q("What language runs natively in web browsers?", []string{"JavaScript", "Java", "C#", "Swift"}, 0, 400),
				q("Which language introduced the borrow checker?", []string{"Rust", "Go", "Zig", "D"}, 0, 600),
				q("What was the first widely used high-level language?", []string{"FORTRAN", "COBOL", "Lisp", "ALGOL"}, 0, 800),
			}},
			{Name: "Algorithms", Questions: []domain.Question{
				q("What is the average complexity of binary search?", []string{"O(log n)", "O(n)", "O(n log n)", "O(1)"}, 0, 200),
				q("Which sort algorithm has worst-case O(n log n)?", []string{"Merge sort", "Quicksort", "Bubble sort", "Insertion sort"}, 0, 400),
				q("Dijkstra's algorithm computes what?", []string{"Shortest paths", "Minimum spanning tree", "Max flow", "Topological order"}, 0, 600),
				q("What does dynamic programming rely on?", []string{"Overlapping subproblems", "Random sampling", "Divide only", "Backtracking"}, 0, 800),
			}},
			{Name: "OOP", Questions: []domain.Question{
				q("What hides internal state behind methods?", []string{"Encapsulation", "Inheritance", "Polymorphism", "Abstraction"}, 0, 200),
				q("Which language popularized 'everything is an object'?", []string{"Smalltalk", "C++", "Java", "Pascal"}, 0, 400),
				q("Calling the same method on different types is called?", []string{"Polymorphism", "Overloading", "Casting", "Reflection"}, 0, 600),
				q("Who coined the term 'object-oriented programming'?", []string{"Alan Kay", "Bjarne Stroustrup", "James Gosling", "Dennis Ritchie"}, 0, 800),
			}},
			{Name: "Computer History", Questions: []domain.Question{
				q("Who is considered the first computer programmer?", []string{"Ada Lovelace", "Alan Turing", "Grace Hopper", "Charles Babbage"}, 0, 200),
				q("What machine broke the Enigma cipher?", []string{"Bombe", "ENIAC", "Colossus", "UNIVAC"}, 0, 400),
				q("Which company built the first commercial microprocessor?", []string{"Intel", "IBM", "Texas Instruments", "Motorola"}, 0, 600),
				q("In which decade was the World Wide Web invented?", []string{"1980s", "1970s", "1990s", "2000s"}, 0, 800),
			}},
		},
	}
}

func musicBoard() domain.Board {
	return domain.Board{
		Name: CategoryMusic,
		Columns: []domain.Column{
			{Name: "Famous Artists", Questions: []domain.Question{
				q("Who is known as the 'King of Pop'?", []string{"Michael Jackson", "Elvis Presley", "Prince", "Stevie Wonder"}, 0, 200),
				q("Which artist released 'Purple Rain'?", []string{"Prince", "David Bowie", "Lionel Richie", "George Michael"}, 0, 400),
				q("Who composed over 600 works before dying at 35?", []string{"Mozart", "Beethoven", "Schubert", "Chopin"}, 0, 600),
				q("Which singer was nicknamed 'Lady Day'?", []string{"Billie Holiday", "Ella Fitzgerald", "Nina Simone", "Aretha Franklin"}, 0, 800),
			}},
			{Name: "Famous Songs", Questions: []domain.Question{
				q("Who recorded 'Bohemian Rhapsody'?", []string{"Queen", "The Beatles", "Led Zeppelin", "Pink Floyd"}, 0, 200),
				q("'Imagine' was written by which artist?", []string{"John Lennon", "Paul McCartney", "Bob Dylan", "Elton John"}, 0, 400),
				q("Which song opens with 'Is this the real life?'", []string{"Bohemian Rhapsody", "Stairway to Heaven", "Hotel California", "Hey Jude"}, 0, 600),
				q("What 1985 charity single featured 45 artists?", []string{"We Are the World", "Do They Know It's Christmas", "Heal the World", "One Love"}, 0, 800),
			}},
			{Name: "Rock Music", Questions: []domain.Question{
				q("Which band released 'The Dark Side of the Moon'?", []string{"Pink Floyd", "The Rolling Stones", "The Who", "Genesis"}, 0, 200),
				q("Who was the lead singer of Nirvana?", []string{"Kurt Cobain", "Eddie Vedder", "Chris Cornell", "Dave Grohl"}, 0, 400),
				q("Which guitarist played the Woodstock anthem in 1969?", []string{"Jimi Hendrix", "Eric Clapton", "Jimmy Page", "Carlos Santana"}, 0, 600),
				q("What city is considered the birthplace of grunge?", []string{"Seattle", "Portland", "San Francisco", "Detroit"}, 0, 800),
			}},
			{Name: "Instruments", Questions: []domain.Question{
				q("How many strings does a standard guitar have?", []string{"Six", "Four", "Five", "Seven"}, 0, 200),
				q("Which instrument has 88 keys?", []string{"Piano", "Organ", "Harpsichord", "Accordion"}, 0, 400),
				q("The saxophone belongs to which family?", []string{"Woodwind", "Brass", "Percussion", "String"}, 0, 600),
				q("Which country did the sitar originate in?", []string{"India", "China", "Persia", "Turkey"}, 0, 800),
			}},
		},
	}
}

func sportsBoard() domain.Board {
	return domain.Board{
		Name: CategorySports,
		Columns: []domain.Column{
			{Name: "Olympic Sports", Questions: []domain.Question{
				q("How often are the Summer Olympics held?", []string{"Every 4 years", "Every 2 years", "Every 3 years", "Every 5 years"}, 0, 200),
				q("Which city hosted the first modern Olympics?", []string{"Athens", "Paris", "London", "Rome"}, 0, 400),
				q("What sport uses the term 'repechage'?", []string{"Rowing", "Fencing", "Archery", "Diving"}, 0, 600),
				q("How many rings are on the Olympic flag?", []string{"Five", "Four", "Six", "Seven"}, 0, 800),
			}},
			{Name: "Team Sports", Questions: []domain.Question{
				q("How many players are on a soccer team on the field?", []string{"Eleven", "Nine", "Ten", "Twelve"}, 0, 200),
				q("In which sport is the Stanley Cup awarded?", []string{"Ice hockey", "Basketball", "Baseball", "Lacrosse"}, 0, 400),
				q("How long is a standard basketball game in the NBA?", []string{"48 minutes", "40 minutes", "60 minutes", "45 minutes"}, 0, 600),
				q("Which country invented volleyball?", []string{"United States", "Brazil", "Japan", "Italy"}, 0, 800),
			}},
			{Name: "Famous Athletes", Questions: []domain.Question{
				q("Who holds the record for most Olympic gold medals?", []string{"Michael Phelps", "Usain Bolt", "Carl Lewis", "Mark Spitz"}, 0, 200),
				q("Which boxer was known as 'The Greatest'?", []string{"Muhammad Ali", "Mike Tyson", "Joe Frazier", "George Foreman"}, 0, 400),
				q("Who scored the 'Hand of God' goal?", []string{"Diego Maradona", "Pelé", "Zinedine Zidane", "Ronaldo"}, 0, 600),
				q("Which tennis player has won the most Grand Slam singles titles?", []string{"Novak Djokovic", "Rafael Nadal", "Roger Federer", "Pete Sampras"}, 0, 800),
			}},
			{Name: "Sports Trivia", Questions: []domain.Question{
				q("What is a score of zero called in tennis?", []string{"Love", "Nil", "Duck", "Blank"}, 0, 200),
				q("How many holes are played in a standard round of golf?", []string{"Eighteen", "Nine", "Sixteen", "Twenty"}, 0, 400),
				q("What color jersey does the Tour de France leader wear?", []string{"Yellow", "Green", "White", "Polka dot"}, 0, 600),
				q("In darts, what is the highest score with a single throw?", []string{"60", "50", "100", "180"}, 0, 800),
			}},
		},
	}
}
