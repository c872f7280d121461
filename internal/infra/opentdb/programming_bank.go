package opentdb

import "space-trivia-service/internal/domain"

// programmingBank holds the built-in programming question sets. These
// categories never reach the trivia API; they are served locally. Categories
// without a dedicated set (nodejs, webdev, programming) draw from the whole
// pool.
var programmingBank = map[string][]domain.BankQuestion{
	"react": {
		{
			Text:             "What is the correct way to create a functional component in React?",
			CorrectAnswer:    "function MyComponent() { return <div>Hello</div>; }",
			IncorrectAnswers: []string{"class MyComponent() { return <div>Hello</div>; }", "const MyComponent = <div>Hello</div>;", "MyComponent() => <div>Hello</div>;"},
			Difficulty:       "easy",
			Category:         "Programming: React",
		},
		{
			Text:             "Which hook is used to manage state in functional components?",
			CorrectAnswer:    "useState",
			IncorrectAnswers: []string{"useEffect", "useContext", "useReducer"},
			Difficulty:       "easy",
			Category:         "Programming: React",
		},
		{
			Text:             "What is JSX in React?",
			CorrectAnswer:    "JavaScript XML - a syntax extension for JavaScript",
			IncorrectAnswers: []string{"Java Syntax Extension", "JavaScript eXtended", "JSON Syntax eXtension"},
			Difficulty:       "medium",
			Category:         "Programming: React",
		},
		{
			Text:             "Which hook is used for side effects in React?",
			CorrectAnswer:    "useEffect",
			IncorrectAnswers: []string{"useState", "useCallback", "useMemo"},
			Difficulty:       "medium",
			Category:         "Programming: React",
		},
	},
	"javascript": {
		{
			Text:             "Which of the following is NOT a JavaScript data type?",
			CorrectAnswer:    "float",
			IncorrectAnswers: []string{"string", "boolean", "undefined"},
			Difficulty:       "easy",
			Category:         "Programming: JavaScript",
		},
		{
			Text:             "What does '===' operator do in JavaScript?",
			CorrectAnswer:    "Strict equality comparison (type and value)",
			IncorrectAnswers: []string{"Assignment", "Loose equality comparison", "Greater than or equal"},
			Difficulty:       "medium",
			Category:         "Programming: JavaScript",
		},
		{
			Text:             "Which method is used to add an element to the end of an array?",
			CorrectAnswer:    "push()",
			IncorrectAnswers: []string{"pop()", "shift()", "unshift()"},
			Difficulty:       "easy",
			Category:         "Programming: JavaScript",
		},
		{
			Text:             "What is a closure in JavaScript?",
			CorrectAnswer:    "A function that has access to variables in its outer scope",
			IncorrectAnswers: []string{"A way to close the browser", "A method to end a loop", "A type of error handling"},
			Difficulty:       "hard",
			Category:         "Programming: JavaScript",
		},
	},
	"html": {
		{
			Text:             "What does HTML stand for?",
			CorrectAnswer:    "HyperText Markup Language",
			IncorrectAnswers: []string{"High Tech Modern Language", "Home Tool Markup Language", "Hyperlink and Text Markup Language"},
			Difficulty:       "easy",
			Category:         "Programming: HTML",
		},
		{
			Text:             "Which HTML tag is used to define an internal style sheet?",
			CorrectAnswer:    "<style>",
			IncorrectAnswers: []string{"<css>", "<script>", "<link>"},
			Difficulty:       "easy",
			Category:         "Programming: HTML",
		},
		{
			Text:             "Which attribute specifies a unique identifier for an HTML element?",
			CorrectAnswer:    "id",
			IncorrectAnswers: []string{"class", "name", "key"},
			Difficulty:       "easy",
			Category:         "Programming: HTML",
		},
		{
			Text:             "What is the correct HTML element for the largest heading?",
			CorrectAnswer:    "<h1>",
			IncorrectAnswers: []string{"<heading>", "<h6>", "<header>"},
			Difficulty:       "easy",
			Category:         "Programming: HTML",
		},
	},
	"css": {
		{
			Text:             "What does CSS stand for?",
			CorrectAnswer:    "Cascading Style Sheets",
			IncorrectAnswers: []string{"Computer Style Sheets", "Creative Style Sheets", "Colorful Style Sheets"},
			Difficulty:       "easy",
			Category:         "Programming: CSS",
		},
		{
			Text:             "Which CSS property is used to change the text color?",
			CorrectAnswer:    "color",
			IncorrectAnswers: []string{"text-color", "font-color", "text-style"},
			Difficulty:       "easy",
			Category:         "Programming: CSS",
		},
		{
			Text:             "What is the CSS box model?",
			CorrectAnswer:    "Content, Padding, Border, Margin",
			IncorrectAnswers: []string{"Header, Body, Footer", "Width, Height, Depth", "Top, Right, Bottom, Left"},
			Difficulty:       "medium",
			Category:         "Programming: CSS",
		},
		{
			Text:             "Which CSS property is used to make text bold?",
			CorrectAnswer:    "font-weight",
			IncorrectAnswers: []string{"text-weight", "font-style", "text-decoration"},
			Difficulty:       "easy",
			Category:         "Programming: CSS",
		},
	},
	"java": {
		{
			Text:             "Which of the following is the correct way to declare a variable in Java?",
			CorrectAnswer:    "int x = 5;",
			IncorrectAnswers: []string{"var x = 5;", "x = 5;", "declare int x = 5;"},
			Difficulty:       "easy",
			Category:         "Programming: Java",
		},
		{
			Text:             "What is the main method signature in Java?",
			CorrectAnswer:    "public static void main(String[] args)",
			IncorrectAnswers: []string{"public void main(String[] args)", "static void main(String args)", "public main(String[] args)"},
			Difficulty:       "medium",
			Category:         "Programming: Java",
		},
		{
			Text:             "Which keyword is used to inherit a class in Java?",
			CorrectAnswer:    "extends",
			IncorrectAnswers: []string{"implements", "inherits", "super"},
			Difficulty:       "medium",
			Category:         "Programming: Java",
		},
		{
			Text:             "What is encapsulation in Java?",
			CorrectAnswer:    "Hiding internal implementation details",
			IncorrectAnswers: []string{"Creating multiple objects", "Inheriting from parent class", "Overriding methods"},
			Difficulty:       "hard",
			Category:         "Programming: Java",
		},
	},
	"python": {
		{
			Text:             "Which of the following is the correct way to create a list in Python?",
			CorrectAnswer:    "my_list = [1, 2, 3]",
			IncorrectAnswers: []string{"my_list = (1, 2, 3)", "my_list = {1, 2, 3}", "my_list = <1, 2, 3>"},
			Difficulty:       "easy",
			Category:         "Programming: Python",
		},
		{
			Text:             "What is the correct way to define a function in Python?",
			CorrectAnswer:    "def my_function():",
			IncorrectAnswers: []string{"function my_function():", "def my_function[]:", "function my_function[]:"},
			Difficulty:       "easy",
			Category:         "Programming: Python",
		},
		{
			Text:             "Which Python keyword is used for exception handling?",
			CorrectAnswer:    "try",
			IncorrectAnswers: []string{"catch", "handle", "exception"},
			Difficulty:       "medium",
			Category:         "Programming: Python",
		},
		{
			Text:             "What is a lambda function in Python?",
			CorrectAnswer:    "An anonymous function",
			IncorrectAnswers: []string{"A built-in function", "A class method", "A variable type"},
			Difficulty:       "hard",
			Category:         "Programming: Python",
		},
	},
}
