package mealdb

// arrabiataJSON is a trimmed lookup.php response for recipe 52771
const arrabiataJSON = `{"meals":[{
	"idMeal":"52771",
	"strMeal":"Spicy Arrabiata Penne",
	"strCategory":"Vegetarian",
	"strArea":"Italian",
	"strInstructions":"Bring a large pot of water to a boil.\r\nAdd kosher salt.",
	"strMealThumb":"https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
	"strTags":"Pasta, Curry",
	"strYoutube":"https://www.youtube.com/watch?v=1IszT_guI08",
	"strSource":null,
	"strIngredient1":"penne rigate",
	"strIngredient2":"olive oil",
	"strIngredient3":"garlic",
	"strIngredient4":"  ",
	"strIngredient5":"chopped tomatoes",
	"strIngredient6":"",
	"strIngredient7":null,
	"strIngredient20":"Parmigiano-Reggiano",
	"strMeasure1":"1 pound",
	"strMeasure2":"1/4 cup",
	"strMeasure3":"3 cloves",
	"strMeasure4":"1 tsp",
	"strMeasure5":"1 tin ",
	"strMeasure6":"",
	"strMeasure7":null,
	"strMeasure20":null
}]}`

// searchJSON is a trimmed search.php response
const searchJSON = `{"meals":[
	{"idMeal":"52771","strMeal":"Spicy Arrabiata Penne","strMealThumb":"https://img/52771.jpg"},
	{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strMealThumb":"https://img/52772.jpg"},
	{"idMeal":"52773","strMeal":"Honey Teriyaki Salmon","strMealThumb":"https://img/52773.jpg"}
]}`

const noMealsJSON = `{"meals":null}`
