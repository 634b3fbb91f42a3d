package memory

import "trivia-quiz-service/internal/domain"

func q(id int, text, a, b, c, d string, correct domain.Option) domain.Question {
	return domain.Question{
		ID:            id,
		Text:          text,
		Options:       domain.OptionSet{A: a, B: b, C: c, D: d},
		CorrectOption: correct,
	}
}

// DefaultQuestions returns the built-in general knowledge bank. Each call
// returns a fresh slice.
func DefaultQuestions() []domain.Question {
	return []domain.Question{
		q(1, "What is the capital of France?", "London", "Berlin", "Paris", "Madrid", domain.OptionC),
		q(2, "Which planet is known as the Red Planet?", "Venus", "Mars", "Jupiter", "Saturn", domain.OptionB),
		q(3, "What is 2 + 2?", "3", "4", "5", "6", domain.OptionB),
		q(4, "Who painted the Mona Lisa?", "Van Gogh", "Picasso", "Da Vinci", "Monet", domain.OptionC),
		q(5, "What is the largest ocean on Earth?", "Atlantic", "Indian", "Arctic", "Pacific", domain.OptionD),
		q(6, "Which programming language is known for web development?", "Python", "JavaScript", "C++", "Java", domain.OptionB),
		q(7, "What year did World War II end?", "1944", "1945", "1946", "1947", domain.OptionB),
		q(8, "Which element has the chemical symbol \"O\"?", "Gold", "Silver", "Oxygen", "Iron", domain.OptionC),
		q(9, "What is the smallest country in the world?", "Monaco", "Vatican City", "San Marino", "Liechtenstein", domain.OptionB),
		q(10, "Which animal is known as the King of the Jungle?", "Tiger", "Elephant", "Lion", "Leopard", domain.OptionC),
		q(11, "What is the speed of light in vacuum?", "300,000 km/s", "150,000 km/s", "299,792,458 m/s", "186,000 miles/s", domain.OptionC),
		q(12, "Who wrote 'Romeo and Juliet'?", "Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain", domain.OptionB),
		q(13, "What is the largest mammal in the world?", "African Elephant", "Blue Whale", "Giraffe", "Polar Bear", domain.OptionB),
		q(14, "Which gas makes up about 78% of Earth's atmosphere?", "Oxygen", "Carbon Dioxide", "Nitrogen", "Argon", domain.OptionC),
		q(15, "What is the currency of Japan?", "Yuan", "Won", "Yen", "Rupee", domain.OptionC),
		q(16, "Which continent is the Sahara Desert located in?", "Asia", "Africa", "Australia", "South America", domain.OptionB),
		q(17, "What is the hardest natural substance on Earth?", "Gold", "Iron", "Diamond", "Platinum", domain.OptionC),
		q(18, "Who invented the telephone?", "Thomas Edison", "Alexander Graham Bell", "Nikola Tesla", "Benjamin Franklin", domain.OptionB),
		q(19, "What is the capital of Australia?", "Sydney", "Melbourne", "Canberra", "Perth", domain.OptionC),
		q(20, "Which organ in the human body produces insulin?", "Liver", "Kidney", "Pancreas", "Heart", domain.OptionC),
		q(21, "What is the largest planet in our solar system?", "Saturn", "Jupiter", "Neptune", "Uranus", domain.OptionB),
		q(22, "Which mountain range contains Mount Everest?", "Andes", "Rocky Mountains", "Alps", "Himalayas", domain.OptionD),
		q(23, "What is the chemical formula for water?", "CO2", "H2O", "NaCl", "CH4", domain.OptionB),
		q(24, "Who painted 'The Starry Night'?", "Pablo Picasso", "Vincent van Gogh", "Claude Monet", "Salvador Dalí", domain.OptionB),
		q(25, "What is the longest river in the world?", "Amazon River", "Nile River", "Mississippi River", "Yangtze River", domain.OptionB),
		q(26, "Which programming language was created by Guido van Rossum?", "Java", "Python", "C++", "Ruby", domain.OptionB),
		q(27, "What is the smallest unit of matter?", "Molecule", "Atom", "Electron", "Proton", domain.OptionB),
		q(28, "Which country is known as the Land of the Rising Sun?", "China", "South Korea", "Japan", "Thailand", domain.OptionC),
		q(29, "What is the study of earthquakes called?", "Geology", "Seismology", "Meteorology", "Astronomy", domain.OptionB),
		q(30, "Which vitamin is produced when skin is exposed to sunlight?", "Vitamin A", "Vitamin B", "Vitamin C", "Vitamin D", domain.OptionD),
		q(31, "What is the capital of Canada?", "Toronto", "Vancouver", "Ottawa", "Montreal", domain.OptionC),
		q(32, "Which instrument measures atmospheric pressure?", "Thermometer", "Barometer", "Hygrometer", "Anemometer", domain.OptionB),
		q(33, "What is the largest bone in the human body?", "Tibia", "Femur", "Humerus", "Fibula", domain.OptionB),
		q(34, "Which ocean is the smallest?", "Indian Ocean", "Atlantic Ocean", "Arctic Ocean", "Southern Ocean", domain.OptionC),
		q(35, "What does 'www' stand for?", "World Wide Web", "World Wide Website", "Web World Wide", "Website World Web", domain.OptionA),
		q(36, "Which planet is closest to the Sun?", "Venus", "Earth", "Mercury", "Mars", domain.OptionC),
		q(37, "What is the main ingredient in guacamole?", "Tomato", "Avocado", "Onion", "Pepper", domain.OptionB),
		q(38, "Which blood type is known as the universal donor?", "A", "B", "AB", "O", domain.OptionD),
		q(39, "What is the tallest mammal?", "Elephant", "Giraffe", "Horse", "Camel", domain.OptionB),
		q(40, "Which metal is liquid at room temperature?", "Lead", "Mercury", "Tin", "Zinc", domain.OptionB),
		q(41, "What is the most abundant gas in the universe?", "Oxygen", "Helium", "Hydrogen", "Nitrogen", domain.OptionC),
		q(42, "Which country has the most time zones?", "Russia", "United States", "China", "France", domain.OptionD),
		q(43, "What is the powerhouse of the cell?", "Nucleus", "Ribosome", "Mitochondria", "Cytoplasm", domain.OptionC),
		q(44, "Which composer wrote 'The Four Seasons'?", "Mozart", "Beethoven", "Bach", "Vivaldi", domain.OptionD),
		q(45, "What is the largest desert in the world?", "Sahara", "Gobi", "Antarctica", "Arabian", domain.OptionC),
		q(46, "Which programming paradigm does JavaScript primarily support?", "Object-oriented", "Functional", "Procedural", "Multi-paradigm", domain.OptionD),
		q(47, "What is the most spoken language in the world?", "English", "Mandarin Chinese", "Spanish", "Hindi", domain.OptionB),
		q(48, "Which organ filters blood in the human body?", "Liver", "Lungs", "Kidneys", "Heart", domain.OptionC),
		q(49, "What is the freezing point of water in Celsius?", "0°C", "32°C", "100°C", "-32°C", domain.OptionA),
		q(50, "Which social media platform was founded by Mark Zuckerberg?", "Twitter", "Instagram", "Facebook", "LinkedIn", domain.OptionC),
	}
}
