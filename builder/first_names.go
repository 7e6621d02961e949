// Package builder ships the default first-name pool for SocialNetwork.
package builder

// firstNames is the built-in pool; entries longer than MaxSocialNameLength
// are skipped when drawing.
var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda", "David", "Susan",
	"William", "Barbara", "Richard", "Jessica", "Joseph", "Sarah", "Thomas", "Karen", "Charles", "Lisa",
	"Daniel", "Nancy", "Matthew", "Betty", "Anthony", "Sandra", "Mark", "Ashley", "Donald", "Emily",
	"Steven", "Donna", "Paul", "Michelle", "Andrew", "Carol", "Joshua", "Amanda", "Kenneth", "Melissa",
	"Kevin", "Deborah", "Brian", "Laura", "George", "Rebecca", "Timothy", "Sharon", "Ronald", "Cynthia",
	"Jason", "Kathy", "Edward", "Amy", "Jeffrey", "Angela", "Ryan", "Anna", "Jacob", "Ruth",
	"Gary", "Brenda", "Nicholas", "Pamela", "Eric", "Nicole", "Jonathan", "Katie", "Stephen", "Helen",
	"Larry", "Samantha", "Justin", "Emma", "Scott", "Olivia", "Brandon", "Diane", "Benjamin", "Julie",
	"Samuel", "Joyce", "Gregory", "Victoria", "Frank", "Kelly", "Alexander", "Christina", "Raymond", "Lauren",
	"Patrick", "Joan", "Jack", "Evelyn", "Dennis", "Judith", "Jerry", "Megan", "Tyler", "Andrea",
	"Aaron", "Cheryl", "Jose", "Hannah", "Adam", "Jacqueline", "Nathan", "Martha", "Henry", "Gloria",
	"Douglas", "Teresa", "Zachary", "Ann", "Peter", "Sara", "Kyle", "Madison", "Ethan", "Frances",
	"Walter", "Kathryn", "Noah", "Janice", "Jeremy", "Jean", "Carl", "Abigail", "Keith", "Alice",
	"Roger", "Judy", "Gerald", "Sophia", "Harold", "Grace", "Sean", "Denise", "Austin", "Amber",
	"Arthur", "Doris", "Lawrence", "Marilyn", "Jesse", "Danielle", "Dylan", "Beverly", "Bryan", "Isabella",
	"Joe", "Theresa", "Jordan", "Diana", "Billy", "Natalie", "Bruce", "Brittany", "Albert", "Charlotte",
	"Willie", "Marie", "Gabriel", "Kayla", "Logan", "Alexis", "Alan", "Lori", "Juan", "Alyssa",
	"Wayne", "Rose", "Elijah", "Ella", "Randy", "Mia", "Roy", "Lily", "Vincent", "Chloe",
	"Ralph", "Zoe", "Eugene", "Leah", "Russell", "Ava", "Bobby", "Hazel", "Mason", "Ivy",
	"Philip", "Nora", "Louis", "Ruby", "Leo", "Iris", "Oscar", "Clara", "Hugo", "Stella",
	"Felix", "Eva", "Ivan", "Maya", "Omar", "Lucy", "Otto", "Ada", "Max", "Nina",
}

// FirstNames returns a copy of the built-in first-name pool.
func FirstNames() []string {
	return append([]string(nil), firstNames...)
}
